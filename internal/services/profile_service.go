package services

import (
	"errors"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get fetches the profile for a user. A missing row is not an error: callers
// get a customer-role default so the session keeps working.
func (s *ProfileService) Get(userID uuid.UUID) *models.Profile {
	var profile models.Profile
	if err := s.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return &models.Profile{
			UserID: userID,
			Role:   models.RoleCustomer,
		}
	}
	return &profile
}

// Update writes the owner-editable fields. Role is never touched here.
func (s *ProfileService) Update(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, ErrProfileNotFound
	}

	updates := map[string]interface{}{}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if len(updates) > 0 {
		if err := s.db.Model(&profile).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &profile, nil
}

// byUserIDs fetches profiles for a distinct set of user IDs in one query,
// keyed for client-side joining.
func profilesByUserIDs(db *gorm.DB, userIDs []uuid.UUID) (map[uuid.UUID]models.Profile, error) {
	result := make(map[uuid.UUID]models.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}
	var profiles []models.Profile
	if err := db.Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		result[p.UserID] = p
	}
	return result, nil
}
