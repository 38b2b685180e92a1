package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is one anonymous post. UserID is nil for the global feed.
// Text is stored post-sanitization. Rows are removed only by the
// global retention trim.
type Message struct {
	ID        uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Text      string     `gorm:"column:message_text;type:text;not null" json:"message_text"`
	Timestamp time.Time  `gorm:"column:timestamp;index" json:"timestamp"`

	// Foreign key backstop against races with any future user deletion
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
