package service

import "errors"

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrPageNotFound  = errors.New("page not found")
	ErrUserNotFound  = errors.New("user not found")
)

// ValidationError reports a caller-correctable problem with one input
// field. Handlers surface it as a 400 with field-level detail.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
