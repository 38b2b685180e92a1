package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a page owner. Rows are created once and never updated or
// deleted; the unique index on Username is the actual uniqueness
// guarantee, application-level checks are only a fast path.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
