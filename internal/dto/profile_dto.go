package dto

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,max=255"`
	Email    string `json:"email" validate:"omitempty,email"`
}
