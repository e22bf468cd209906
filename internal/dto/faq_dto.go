package dto

type CreateFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

type UpdateFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	IsActive *bool  `json:"is_active"`
}
