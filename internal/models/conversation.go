package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ConversationStatusOpen     = "open"
	ConversationStatusResolved = "resolved"
)

// SupportConversation is a thread between one customer and admin staff,
// optionally tied to an order or an FAQ entry. LastMessage/LastMessageAt are
// a denormalized cache of the newest ConversationMessage, maintained in the
// same transaction as each message insert.
//
// Status is free text and IsResolved is a bool; every write site updates both
// together but nothing in the schema ties them.
type SupportConversation struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Status        string     `gorm:"size:50;not null;default:'open'" json:"status"`
	IsResolved    bool       `gorm:"default:false" json:"is_resolved"`
	Priority      string     `gorm:"size:20;not null;default:'medium'" json:"priority"`
	FAQQuestionID *uuid.UUID `gorm:"type:uuid;index" json:"faq_question_id,omitempty"`
	OrderID       *uuid.UUID `gorm:"type:uuid;index" json:"order_id,omitempty"`
	LastMessage   string     `gorm:"type:text" json:"last_message"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (s *SupportConversation) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (SupportConversation) TableName() string {
	return "support_conversations"
}
