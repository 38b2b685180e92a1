package handler

import (
	"errors"
	"net/http"

	"github.com/say2me/backend/internal/service"
	"github.com/say2me/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError maps domain errors to HTTP responses. Every error
// body is {error, message}, except field validation failures which use
// {errors: [{field, message}], message}. Unknown errors become a
// generic 500 so storage internals never reach the client.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []gin.H{{
				"field":   validationErr.Field,
				"message": validationErr.Reason,
			}},
			"message": "Validation failed",
		})

	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Username already taken",
			"message": "Please choose another username",
		})

	case errors.Is(err, service.ErrPageNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Page not found",
			"message": "Invalid username",
		})

	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "User not found",
			"message": "Invalid user ID",
		})

	default:
		logger.Log.Error("Unhandled service error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": "Please try again later",
		})
	}
}
