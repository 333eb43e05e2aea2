package handler

// cartItemRequest is one line to merge into the cart. The product name,
// price, and image are supplied by the client and stored as an add-time
// snapshot. Quantity is deliberately unvalidated here: the cart service
// owns the non-positive-quantity rule, so zero and negative values reach
// it and fail uniformly.
type cartItemRequest struct {
	ProductID    string  `json:"product_id"    validate:"required"`
	Quantity     int     `json:"quantity"`
	Size         string  `json:"size"          validate:"required"`
	Color        string  `json:"color"         validate:"required"`
	ProductName  string  `json:"product_name"  validate:"required"`
	ProductPrice float64 `json:"product_price" validate:"required,gt=0"`
	ProductImage string  `json:"product_image"`
}

type messageResponse struct {
	Message string `json:"message"`
}
