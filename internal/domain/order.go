package domain

import "time"

// Order statuses. An order is created as pending; later transitions happen
// in the back office, never in this service.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// Order is the record persisted at checkout. Items are a snapshot of the
// cart at submission time.
type Order struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	Items           []CartItem `json:"items"`
	TotalCents      int64      `json:"totalCents"`
	Status          string     `json:"status"`
	ShippingAddress string     `json:"shippingAddress"`
	CreatedAt       time.Time  `json:"createdAt"`
}
