package domain

import "time"

// Order event types recorded in the audit trail.
const (
	OrderEventCreated       = "order_created"
	OrderEventCaptured      = "payment_captured"
	OrderEventCaptureFailed = "payment_capture_failed"
)

// OrderEvent is a single audit fact about an order's lifecycle. The trail is
// append-only and best-effort: it observes the order/payment flow, it never
// drives it.
type OrderEvent struct {
	OrderID   string    `json:"order_id" bson:"order_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Type      string    `json:"type" bson:"type"`
	IntentID  string    `json:"intent_id,omitempty" bson:"intent_id,omitempty"`
	Detail    string    `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
