package models

type ContactMessage struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}
