package handler

type createBookingRequest struct {
	ModelID  string  `json:"model_id" validate:"required"`
	Date     string  `json:"date"     validate:"required"`
	Time     string  `json:"time"     validate:"required"`
	Duration int     `json:"duration" validate:"required,gt=0"`
	Message  string  `json:"message"`
	Budget   float64 `json:"budget"   validate:"omitempty,gt=0"`
}
