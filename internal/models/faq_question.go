package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FAQQuestion is an admin-curated question/answer pair shown to customers
// before they open a free-form conversation. Soft-disabled via IsActive.
type FAQQuestion struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *FAQQuestion) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (FAQQuestion) TableName() string {
	return "faq_questions"
}
