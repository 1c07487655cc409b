package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the admin-managed lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// OrderStatuses lists every valid status.
var OrderStatuses = []OrderStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is a confirmed event booking. EventType references a Service by
// name rather than by id, and ClientName is a denormalized copy of the
// user's name; both quirks are inherited from the persisted data layout
// and kept for compatibility.
type Order struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"clientId"`
	ClientName       string          `json:"clientName"`
	EventType        string          `json:"eventType"`
	EventDate        string          `json:"eventDate"`
	VenueID          string          `json:"venueId"`
	Theme            string          `json:"theme"`
	Catering         string          `json:"catering"`
	FoodPresentation string          `json:"foodPresentation"`
	Status           OrderStatus     `json:"status"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	CreatedAt        time.Time       `json:"createdAt"`
}
