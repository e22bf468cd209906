package services

import (
	"errors"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrScooterNotFound = errors.New("scooter not found")

type ScooterService struct {
	db *gorm.DB
}

func NewScooterService(db *gorm.DB) *ScooterService {
	return &ScooterService{db: db}
}

// ListAvailable returns catalog entries customers can order.
func (s *ScooterService) ListAvailable() ([]models.Scooter, error) {
	var scooters []models.Scooter
	err := s.db.Where("is_available = ?", true).Order("name ASC").Find(&scooters).Error
	return scooters, err
}

func (s *ScooterService) ListAll() ([]models.Scooter, error) {
	var scooters []models.Scooter
	err := s.db.Order("name ASC").Find(&scooters).Error
	return scooters, err
}

func (s *ScooterService) Create(req *dto.CreateScooterRequest) (*models.Scooter, error) {
	scooter := models.Scooter{
		Name:        req.Name,
		Model:       req.Model,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		scooter.IsAvailable = *req.IsAvailable
	}
	if err := s.db.Create(&scooter).Error; err != nil {
		return nil, err
	}
	return &scooter, nil
}

func (s *ScooterService) Update(id uuid.UUID, req *dto.UpdateScooterRequest) (*models.Scooter, error) {
	var scooter models.Scooter
	if err := s.db.First(&scooter, "id = ?", id).Error; err != nil {
		return nil, ErrScooterNotFound
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Model != "" {
		updates["model"] = req.Model
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}

	if len(updates) > 0 {
		if err := s.db.Model(&scooter).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.First(&scooter, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &scooter, nil
}
