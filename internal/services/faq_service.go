package services

import (
	"errors"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFAQNotFound = errors.New("faq question not found")

type FAQService struct {
	db *gorm.DB
}

func NewFAQService(db *gorm.DB) *FAQService {
	return &FAQService{db: db}
}

// ListActive returns customer-visible entries only.
func (s *FAQService) ListActive() ([]models.FAQQuestion, error) {
	var faqs []models.FAQQuestion
	err := s.db.Where("is_active = ?", true).Order("created_at ASC").Find(&faqs).Error
	return faqs, err
}

// ListAll returns every entry, including disabled ones, for the admin panel.
func (s *FAQService) ListAll() ([]models.FAQQuestion, error) {
	var faqs []models.FAQQuestion
	err := s.db.Order("created_at ASC").Find(&faqs).Error
	return faqs, err
}

func (s *FAQService) Get(id uuid.UUID) (*models.FAQQuestion, error) {
	var faq models.FAQQuestion
	if err := s.db.First(&faq, "id = ?", id).Error; err != nil {
		return nil, ErrFAQNotFound
	}
	return &faq, nil
}

func (s *FAQService) Create(req *dto.CreateFAQRequest) (*models.FAQQuestion, error) {
	faq := models.FAQQuestion{
		Question: req.Question,
		Answer:   req.Answer,
		IsActive: true,
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}
	if err := s.db.Create(&faq).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (s *FAQService) Update(id uuid.UUID, req *dto.UpdateFAQRequest) (*models.FAQQuestion, error) {
	var faq models.FAQQuestion
	if err := s.db.First(&faq, "id = ?", id).Error; err != nil {
		return nil, ErrFAQNotFound
	}

	updates := map[string]interface{}{
		"question": req.Question,
		"answer":   req.Answer,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := s.db.Model(&faq).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

// Delete hard-deletes the entry. Conversations that referenced it keep their
// faq_question_id; there is no cross-reference cleanup.
func (s *FAQService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.FAQQuestion{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFAQNotFound
	}
	return nil
}
