package services

import (
	"errors"
	"time"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrConversationResolved = errors.New("conversation is resolved")
)

type ConversationService struct {
	db *gorm.DB
}

func NewConversationService(db *gorm.DB) *ConversationService {
	return &ConversationService{db: db}
}

func (s *ConversationService) Get(id uuid.UUID) (*models.SupportConversation, error) {
	var conv models.SupportConversation
	if err := s.db.First(&conv, "id = ?", id).Error; err != nil {
		return nil, ErrConversationNotFound
	}
	return &conv, nil
}

// ListForUser returns the caller's conversations, newest activity first.
// resolved filters on is_resolved when non-nil.
func (s *ConversationService) ListForUser(userID uuid.UUID, resolved *bool) ([]models.SupportConversation, error) {
	query := s.db.Where("user_id = ?", userID)
	if resolved != nil {
		query = query.Where("is_resolved = ?", *resolved)
	}

	var convs []models.SupportConversation
	err := query.Order("updated_at DESC").Find(&convs).Error
	return convs, err
}

// ListForAdmin returns conversations across all users with customer and order
// summaries. Summaries are fetched in separate queries keyed by the distinct
// user and order IDs in the page, then joined in Go.
func (s *ConversationService) ListForAdmin(unresolvedOnly bool) ([]dto.AdminConversation, error) {
	query := s.db.Order("updated_at DESC")
	if unresolvedOnly {
		query = query.Where("is_resolved = ?", false)
	}

	var convs []models.SupportConversation
	if err := query.Find(&convs).Error; err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, 0, len(convs))
	orderIDs := make([]uuid.UUID, 0)
	seenUsers := make(map[uuid.UUID]bool)
	seenOrders := make(map[uuid.UUID]bool)
	for _, c := range convs {
		if !seenUsers[c.UserID] {
			seenUsers[c.UserID] = true
			userIDs = append(userIDs, c.UserID)
		}
		if c.OrderID != nil && !seenOrders[*c.OrderID] {
			seenOrders[*c.OrderID] = true
			orderIDs = append(orderIDs, *c.OrderID)
		}
	}

	profiles, err := profilesByUserIDs(s.db, userIDs)
	if err != nil {
		return nil, err
	}
	orders, err := ordersByIDs(s.db, orderIDs)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AdminConversation, 0, len(convs))
	for _, c := range convs {
		ac := dto.AdminConversation{SupportConversation: c}
		if p, ok := profiles[c.UserID]; ok {
			ac.Customer = &dto.CustomerSummary{
				FullName:     p.FullName,
				MobileNumber: p.MobileNumber,
				Email:        p.Email,
			}
		}
		if c.OrderID != nil {
			if o, ok := orders[*c.OrderID]; ok {
				ac.Order = &dto.OrderSummary{
					OrderNumber: o.OrderNumber,
					Status:      o.Status,
					TotalAmount: o.TotalAmount,
				}
			}
		}
		result = append(result, ac)
	}
	return result, nil
}

// Create inserts the conversation and, when an FAQ or free-text opener is
// given, its seed message and summary in one transaction. An FAQ seed carries
// the answer as an admin message; free text seeds as the customer.
func (s *ConversationService) Create(userID uuid.UUID, req *dto.CreateConversationRequest) (*models.SupportConversation, error) {
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	conv := models.SupportConversation{
		UserID:        userID,
		Title:         req.Title,
		Status:        models.ConversationStatusOpen,
		Priority:      priority,
		FAQQuestionID: req.FAQQuestionID,
		OrderID:       req.OrderID,
	}

	var seed *models.ConversationMessage
	if req.FAQQuestionID != nil {
		var faq models.FAQQuestion
		if err := s.db.First(&faq, "id = ?", *req.FAQQuestionID).Error; err != nil {
			return nil, ErrFAQNotFound
		}
		seed = &models.ConversationMessage{
			SenderType: models.SenderAdmin,
			Message:    faq.Answer,
		}
	} else if req.Message != "" {
		seed = &models.ConversationMessage{
			SenderType: models.SenderCustomer,
			Message:    req.Message,
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&conv).Error; err != nil {
			return err
		}
		if seed == nil {
			return nil
		}
		seed.ConversationID = conv.ID
		if err := tx.Create(seed).Error; err != nil {
			return err
		}
		now := time.Now()
		conv.LastMessage = seed.Message
		conv.LastMessageAt = &now
		return tx.Model(&conv).Updates(map[string]interface{}{
			"last_message":    seed.Message,
			"last_message_at": now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// Messages returns the append-only log, oldest first.
func (s *ConversationService) Messages(conversationID uuid.UUID) ([]models.ConversationMessage, error) {
	var msgs []models.ConversationMessage
	err := s.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").Find(&msgs).Error
	return msgs, err
}

// SendMessage appends a message and refreshes the conversation's denormalized
// summary in the same transaction. Resolved conversations accept no further
// messages from either side.
func (s *ConversationService) SendMessage(conversationID uuid.UUID, senderType string, req *dto.SendMessageRequest) (*models.ConversationMessage, error) {
	var conv models.SupportConversation
	if err := s.db.First(&conv, "id = ?", conversationID).Error; err != nil {
		return nil, ErrConversationNotFound
	}
	if conv.IsResolved {
		return nil, ErrConversationResolved
	}

	msg := models.ConversationMessage{
		ConversationID: conversationID,
		SenderType:     senderType,
		Message:        req.Message,
		FileURL:        req.FileURL,
		FileName:       req.FileName,
		FileType:       req.FileType,
		FileSize:       req.FileSize,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}
		return tx.Model(&conv).Updates(map[string]interface{}{
			"last_message":    msg.Message,
			"last_message_at": time.Now(),
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// Resolve marks the conversation resolved. Idempotent: already-resolved
// conversations are written again without error.
func (s *ConversationService) Resolve(conversationID uuid.UUID) (*models.SupportConversation, error) {
	var conv models.SupportConversation
	if err := s.db.First(&conv, "id = ?", conversationID).Error; err != nil {
		return nil, ErrConversationNotFound
	}

	// status and is_resolved move together at every write site
	if err := s.db.Model(&conv).Updates(map[string]interface{}{
		"is_resolved": true,
		"status":      models.ConversationStatusResolved,
	}).Error; err != nil {
		return nil, err
	}

	conv.IsResolved = true
	conv.Status = models.ConversationStatusResolved
	return &conv, nil
}
