package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderFailed    OrderStatus = "failed"
	OrderCancelled OrderStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions. Failed and
// cancelled are reachable only through payment-provider error paths; the
// happy path is pending → completed.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderCompleted, OrderFailed, OrderCancelled},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is an immutable snapshot of a cart at checkout time. Items, total,
// and address never change after creation; only Status and PayPalOrderID
// mutate, during payment capture.
type Order struct {
	ID            string      `json:"id" bson:"id"`
	UserID        string      `json:"user_id" bson:"user_id"`
	Items         []CartItem  `json:"items" bson:"items"`
	Total         float64     `json:"total" bson:"total"`
	Status        OrderStatus `json:"status" bson:"status"`
	PayPalOrderID string      `json:"paypal_order_id,omitempty" bson:"paypal_order_id,omitempty"`
	Address       string      `json:"address" bson:"address"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
}
