package testutil

import (
	"time"

	"github.com/say2me/backend/internal/models"

	"github.com/google/uuid"
)

// CreateTestUser returns an unsaved user row with the given username.
func CreateTestUser(username string) *models.User {
	return &models.User{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: time.Now(),
	}
}

// CreateTestMessage returns an unsaved message bound to a user.
func CreateTestMessage(userID uuid.UUID, text string, ts time.Time) *models.Message {
	return &models.Message{
		UserID:    &userID,
		Text:      text,
		Timestamp: ts,
	}
}

// CreateTestGlobalMessage returns an unsaved global-feed message.
func CreateTestGlobalMessage(text string, ts time.Time) *models.Message {
	return &models.Message{
		Text:      text,
		Timestamp: ts,
	}
}
