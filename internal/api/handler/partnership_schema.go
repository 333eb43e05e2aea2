package handler

type createPartnershipRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Company string `json:"company" validate:"required"`
	Message string `json:"message" validate:"required"`
}
