package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scooter is a catalog entry customers pick from when adding order details.
type Scooter struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Model       string    `gorm:"size:255;not null" json:"model"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `gorm:"size:500" json:"image_url,omitempty"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Scooter) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (Scooter) TableName() string {
	return "scooters"
}
