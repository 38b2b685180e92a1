package repository

import (
	"github.com/say2me/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// CreateForUser inserts a message bound to an existing user.
// Per-user feeds have no retention ceiling.
func (r *MessageRepository) CreateForUser(message *models.Message) error {
	return r.db.Create(message).Error
}

// CreateGlobal inserts a global (anonymous) message and trims the
// global feed down to the ceiling, oldest first. Insert and trim run in
// one transaction so the ceiling either holds or the post fails whole.
func (r *MessageRepository) CreateGlobal(message *models.Message, ceiling int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}

		var count int64
		err := tx.Model(&models.Message{}).Where("user_id IS NULL").Count(&count).Error
		if err != nil {
			return err
		}

		excess := count - int64(ceiling)
		if excess <= 0 {
			return nil
		}

		// Postgres has no DELETE ... LIMIT, so select the victims first
		return tx.Exec(
			`DELETE FROM messages WHERE id IN (
				SELECT id FROM messages
				WHERE user_id IS NULL
				ORDER BY timestamp ASC, id ASC
				LIMIT ?
			)`, excess).Error
	})
}

// ListByUser returns one page of a user's feed, most recent first.
// id DESC breaks timestamp ties so pagination stays stable.
func (r *MessageRepository) ListByUser(userID uuid.UUID, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error

	return messages, err
}

// ListGlobal returns one page of the global feed (rows with no user).
func (r *MessageRepository) ListGlobal(limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("user_id IS NULL").
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error

	return messages, err
}

// CountGlobal reports the global feed size (retention bound checks).
func (r *MessageRepository) CountGlobal() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Where("user_id IS NULL").Count(&count).Error
	return count, err
}
