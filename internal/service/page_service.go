package service

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"strconv"
	"time"

	"github.com/say2me/backend/internal/models"
	"github.com/say2me/backend/internal/repository"
	"github.com/say2me/backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)

// Word lists for generated handles: 8 x 8 x 1000 = 64,000 combinations.
var (
	adjectives = []string{"happy", "lucky", "sunny", "clever", "bright", "kind", "wise", "brave"}
	nouns      = []string{"panda", "tiger", "eagle", "dolphin", "lion", "wolf", "bear", "fox"}
)

type PageService struct {
	userRepo *repository.UserRepository
}

func NewPageService(userRepo *repository.UserRepository) *PageService {
	return &PageService{userRepo: userRepo}
}

// Create makes a new page. With an empty username a random unique
// handle is generated; otherwise the username is validated and claimed.
// The unique index on username is the real arbiter: a concurrent
// create that slips past the fast-path check surfaces as
// ErrUsernameTaken from the insert.
func (s *PageService) Create(username string) (*models.User, error) {
	start := time.Now()

	if username != "" {
		if !usernameRegex.MatchString(username) {
			logger.Log.Warn("Page creation validation failed",
				zap.String("username", username),
			)
			return nil, &ValidationError{
				Field:  "username",
				Reason: "username must be 3-30 characters and may only contain letters, numbers, underscores, and dashes",
			}
		}

		exists, err := s.userRepo.UsernameExists(username)
		if err != nil {
			logger.Log.Error("Failed to check username existence",
				zap.String("username", username),
				zap.Error(err),
			)
			return nil, err
		}
		if exists {
			logger.Log.Warn("Username already taken",
				zap.String("username", username),
			)
			return nil, ErrUsernameTaken
		}
	} else {
		generated, err := s.generateUniqueUsername()
		if err != nil {
			logger.Log.Error("Failed to generate username",
				zap.Error(err),
			)
			return nil, err
		}
		username = generated
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent create
			logger.Log.Warn("Username claimed concurrently",
				zap.String("username", username),
			)
			return nil, ErrUsernameTaken
		}
		logger.Log.Error("Failed to create page in database",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Page created successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username),
		zap.Duration("total_duration", time.Since(start)),
	)

	return user, nil
}

// GetByUsername looks up a page by its slug.
func (s *PageService) GetByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to fetch page",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, ErrPageNotFound
	}
	return user, nil
}

// generateUniqueUsername draws {adjective}-{noun}-{0..999} handles until
// one is free. No attempt cap: collisions stay rare until the 64k
// namespace saturates, and only storage errors abort the loop.
func (s *PageService) generateUniqueUsername() (string, error) {
	for {
		candidate := adjectives[rand.IntN(len(adjectives))] +
			"-" + nouns[rand.IntN(len(nouns))] +
			"-" + strconv.Itoa(rand.IntN(1000))

		exists, err := s.userRepo.UsernameExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}

		logger.Log.Debug("Generated username collided, retrying",
			zap.String("candidate", candidate),
		)
	}
}
