package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SenderCustomer = "customer"
	SenderAdmin    = "admin"
)

// ConversationMessage is one entry in a conversation's append-only log,
// ordered by CreatedAt ascending. Never updated or deleted.
type ConversationMessage struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID uuid.UUID           `gorm:"type:uuid;not null;index" json:"conversation_id"`
	SenderType     string              `gorm:"size:20;not null" json:"sender_type"`
	Message        string              `gorm:"type:text;not null" json:"message"`
	FileURL        string              `gorm:"size:500" json:"file_url,omitempty"`
	FileName       string              `gorm:"size:255" json:"file_name,omitempty"`
	FileType       string              `gorm:"size:100" json:"file_type,omitempty"`
	FileSize       int64               `json:"file_size,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	Conversation   SupportConversation `gorm:"foreignKey:ConversationID" json:"-"`
}

func (m *ConversationMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (ConversationMessage) TableName() string {
	return "conversation_messages"
}
