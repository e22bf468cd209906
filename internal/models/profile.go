package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Profile maps an authenticated identity to a support-portal account.
// One row per identity; created on first successful OTP verification.
type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FullName     string    `gorm:"size:255" json:"full_name"`
	Email        string    `gorm:"size:255" json:"email"`
	MobileNumber string    `gorm:"size:20;not null;uniqueIndex" json:"mobile_number"`
	Role         string    `gorm:"size:20;not null;default:'customer'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Profile) TableName() string {
	return "profiles"
}
