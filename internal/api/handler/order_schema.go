package handler

type createOrderRequest struct {
	Items   []cartItemRequest `json:"items"   validate:"required,min=1,dive"`
	Total   float64           `json:"total"   validate:"required,gt=0"`
	Address string            `json:"address" validate:"required"`
}

type paymentIntentRequest struct {
	Amount  float64 `json:"amount"   validate:"required,gt=0"`
	OrderID string  `json:"order_id" validate:"required"`
}

// paymentIntentResponse carries the external provider's order id, which
// the client feeds into the provider's approval flow.
type paymentIntentResponse struct {
	ID string `json:"id"`
}

type captureResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"order_id"`
}
