package dto

import (
	"github.com/ecoride/support-backend/internal/models"
	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	Title         string     `json:"title" validate:"required,max=255"`
	FAQQuestionID *uuid.UUID `json:"faq_question_id"`
	OrderID       *uuid.UUID `json:"order_id"`
	Message       string     `json:"message"`
	Priority      string     `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type SendMessageRequest struct {
	Message  string `json:"message" validate:"required"`
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size" validate:"min=0"`
}

// CustomerSummary is the profile slice admins see next to a conversation or
// order, resolved in a separate query and joined in Go.
type CustomerSummary struct {
	FullName     string `json:"full_name"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
}

type OrderSummary struct {
	OrderNumber string  `json:"order_number"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
}

type AdminConversation struct {
	models.SupportConversation
	Customer *CustomerSummary `json:"customer,omitempty"`
	Order    *OrderSummary    `json:"order,omitempty"`
}

type UploadResponse struct {
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}
