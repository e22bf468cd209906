package dto

import "github.com/ecoride/support-backend/internal/models"

type OrderItemInput struct {
	Model    string  `json:"model" validate:"required"`
	Name     string  `json:"name"`
	Price    float64 `json:"price" validate:"min=0"`
	Quantity int     `json:"quantity" validate:"min=1"`
}

type CreateOrderRequest struct {
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress string           `json:"delivery_address" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateOrderAmountRequest struct {
	TotalAmount float64 `json:"total_amount" validate:"min=0"`
}

type AdminOrder struct {
	models.Order
	Customer *CustomerSummary `json:"customer,omitempty"`
}
