package services

import (
	"testing"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingProfileDefaultsToCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)

	userID := uuid.New()
	profile := svc.Get(userID)

	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, models.RoleCustomer, profile.Role)
	assert.Empty(t, profile.FullName)
}

func TestUpdateProfileFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)

	userID := uuid.New()
	require.NoError(t, db.Create(&models.Profile{
		UserID:       userID,
		MobileNumber: "+919876543210",
		Role:         models.RoleCustomer,
	}).Error)

	updated, err := svc.Update(userID, &dto.UpdateProfileRequest{
		FullName: "Priya Nair",
		Email:    "priya@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Priya Nair", updated.FullName)
	assert.Equal(t, "priya@example.com", updated.Email)

	// Role stays whatever it was.
	reloaded := svc.Get(userID)
	assert.Equal(t, models.RoleCustomer, reloaded.Role)
}

func TestUpdateMissingProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)

	_, err := svc.Update(uuid.New(), &dto.UpdateProfileRequest{FullName: "Ghost"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
