package dto

type CreateScooterRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Model       string  `json:"model" validate:"required,max=255"`
	Price       float64 `json:"price" validate:"required,min=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	IsAvailable *bool   `json:"is_available"`
}

type UpdateScooterRequest struct {
	Name        string   `json:"name" validate:"omitempty,max=255"`
	Model       string   `json:"model" validate:"omitempty,max=255"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}
