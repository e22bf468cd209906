package services

import (
	"testing"
	"time"

	"github.com/ecoride/support-backend/internal/config"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.OTPCode{},
		&models.RefreshToken{},
		&models.FAQQuestion{},
		&models.SupportConversation{},
		&models.ConversationMessage{},
		&models.Order{},
		&models.Scooter{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
		OTPExpiry:        5 * time.Minute,
		OTPMaxAttempts:   5,
	}
}
