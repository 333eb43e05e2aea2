package domain

import "time"

// BookingPending is the initial status of every booking request.
const BookingPending = "pending"

// ModelBooking links a user to a bookable model profile. Independent of the
// cart/order flow.
type ModelBooking struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	ModelID   string    `json:"model_id" bson:"model_id"`
	Date      string    `json:"date" bson:"date"`
	Time      string    `json:"time" bson:"time"`
	Duration  int       `json:"duration" bson:"duration"`
	Status    string    `json:"status" bson:"status"`
	Message   string    `json:"message" bson:"message"`
	Budget    float64   `json:"budget" bson:"budget"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
