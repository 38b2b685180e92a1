package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/say2me/backend/internal/models"
	"github.com/say2me/backend/internal/repository"
	"github.com/say2me/backend/internal/utils"
	"github.com/say2me/backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PageSize is the fixed number of messages per feed page.
const PageSize = 20

const (
	minMessageLength = 1
	maxMessageLength = 500
)

type MessageService struct {
	messageRepo *repository.MessageRepository
	userRepo    *repository.UserRepository
	globalCap   int
}

func NewMessageService(
	messageRepo *repository.MessageRepository,
	userRepo *repository.UserRepository,
	globalCap int,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		globalCap:   globalCap,
	}
}

// Post validates, sanitizes, and stores a message. A nil userID posts
// to the global feed, which is trimmed back to the retention ceiling in
// the same transaction as the insert. Validation runs on the trimmed
// raw text; sanitization happens before persistence only.
func (s *MessageService) Post(text string, userID *uuid.UUID) (*models.Message, error) {
	trimmed := strings.TrimSpace(text)

	length := utf8.RuneCountInString(trimmed)
	if length < minMessageLength || length > maxMessageLength {
		logger.Log.Warn("Message validation failed",
			zap.Int("length", length),
		)
		return nil, &ValidationError{
			Field:  "text",
			Reason: "message must be between 1 and 500 characters",
		}
	}

	message := &models.Message{
		Text:      utils.SanitizeText(trimmed),
		Timestamp: time.Now(),
	}

	if userID != nil {
		user, err := s.userRepo.GetUserByID(*userID)
		if err != nil {
			logger.Log.Error("Failed to verify user existence",
				zap.String("user_id", userID.String()),
				zap.Error(err),
			)
			return nil, err
		}
		if user == nil {
			logger.Log.Warn("Message posted to unknown user",
				zap.String("user_id", userID.String()),
			)
			return nil, ErrUserNotFound
		}

		message.UserID = userID
		if err := s.messageRepo.CreateForUser(message); err != nil {
			logger.Log.Error("Failed to save message",
				zap.String("user_id", userID.String()),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		if err := s.messageRepo.CreateGlobal(message, s.globalCap); err != nil {
			logger.Log.Error("Failed to save global message",
				zap.Error(err),
			)
			return nil, err
		}
	}

	logger.Log.Info("Message saved",
		zap.Uint64("id", message.ID),
		zap.Bool("global", userID == nil),
		zap.Int("length", length),
	)

	return message, nil
}

// List returns one page of a feed, most recent first. A nil userID
// selects the global feed. Pages beyond the end come back empty rather
// than as an error.
func (s *MessageService) List(userID *uuid.UUID, page int) ([]models.Message, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	var messages []models.Message
	var err error
	if userID != nil {
		messages, err = s.messageRepo.ListByUser(*userID, PageSize, offset)
	} else {
		messages, err = s.messageRepo.ListGlobal(PageSize, offset)
	}
	if err != nil {
		logger.Log.Error("Failed to fetch messages",
			zap.Int("page", page),
			zap.Error(err),
		)
		return nil, err
	}

	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}
