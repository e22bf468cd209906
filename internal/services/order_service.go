package services

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecoride/support-backend/internal/dto"
	"github.com/ecoride/support-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Create inserts a pending order with a zero amount (priced by an admin later)
// and a generated order number.
func (s *OrderService) Create(userID uuid.UUID, req *dto.CreateOrderRequest) (*models.Order, error) {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}

	number, err := GenerateOrderNumber()
	if err != nil {
		return nil, err
	}

	order := models.Order{
		UserID:          userID,
		OrderNumber:     number,
		Status:          models.OrderStatusPending,
		TotalAmount:     0,
		Items:           datatypes.JSON(items),
		DeliveryAddress: req.DeliveryAddress,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) Get(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

// ListForUser returns the caller's orders, newest first.
func (s *OrderService) ListForUser(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// ListForAdmin returns all orders with owning-customer summaries, resolved in
// a separate query keyed by the distinct user IDs and joined in Go.
func (s *OrderService) ListForAdmin() ([]dto.AdminOrder, error) {
	var orders []models.Order
	if err := s.db.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, 0, len(orders))
	seen := make(map[uuid.UUID]bool)
	for _, o := range orders {
		if !seen[o.UserID] {
			seen[o.UserID] = true
			userIDs = append(userIDs, o.UserID)
		}
	}

	profiles, err := profilesByUserIDs(s.db, userIDs)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AdminOrder, 0, len(orders))
	for _, o := range orders {
		ao := dto.AdminOrder{Order: o}
		if p, ok := profiles[o.UserID]; ok {
			ao.Customer = &dto.CustomerSummary{
				FullName:     p.FullName,
				MobileNumber: p.MobileNumber,
				Email:        p.Email,
			}
		}
		result = append(result, ao)
	}
	return result, nil
}

// UpdateStatus is an unconditional admin write: any of the six statuses may be
// set in any order, no transition table.
func (s *OrderService) UpdateStatus(id uuid.UUID, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, ErrOrderNotFound
	}
	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return &order, nil
}

// UpdateAmount sets the admin-priced total.
func (s *OrderService) UpdateAmount(id uuid.UUID, amount float64) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, ErrOrderNotFound
	}
	if err := s.db.Model(&order).Update("total_amount", amount).Error; err != nil {
		return nil, err
	}
	order.TotalAmount = amount
	return &order, nil
}

// GenerateOrderNumber produces SCT-<unix ms>-<12 hex chars>. The random
// suffix keeps numbers generated within the same millisecond distinct.
func GenerateOrderNumber() (string, error) {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}
	return fmt.Sprintf("SCT-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix)), nil
}

func ordersByIDs(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]models.Order, error) {
	result := make(map[uuid.UUID]models.Order, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var orders []models.Order
	if err := db.Where("id IN ?", ids).Find(&orders).Error; err != nil {
		return nil, err
	}
	for _, o := range orders {
		result[o.ID] = o
	}
	return result, nil
}
