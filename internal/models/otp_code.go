package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OTPCode stores a bcrypt hash of a one-time login code. The plaintext code
// only ever exists in the SMS payload.
type OTPCode struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MobileNumber string    `gorm:"size:20;not null;index" json:"mobile_number"`
	CodeHash     string    `gorm:"size:100;not null" json:"-"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	Attempts     int       `gorm:"default:0" json:"attempts"`
	Consumed     bool      `gorm:"default:false" json:"consumed"`
	CreatedAt    time.Time `json:"created_at"`
}

func (o *OTPCode) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (OTPCode) TableName() string {
	return "otp_codes"
}
