package models

import "time"

// DeliveryStatus represents all possible states of a delivery order
type DeliveryStatus string

const (
	StatusPlaced         DeliveryStatus = "PLACED"
	StatusConfirmed      DeliveryStatus = "CONFIRMED"
	StatusPreparing      DeliveryStatus = "PREPARING"
	StatusPickedUp       DeliveryStatus = "PICKED_UP"
	StatusOutForDelivery DeliveryStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      DeliveryStatus = "DELIVERED"
	StatusCancelled      DeliveryStatus = "CANCELLED"
)

// AssignmentStatusAssigned is the initial state of a fresh partner assignment.
// It belongs to the assignment record, not to the delivery lifecycle above.
const AssignmentStatusAssigned = "ASSIGNED"

// DeliveryAddress is a pure value type; it is never persisted here.
type DeliveryAddress struct {
	Line1   string `json:"line1" binding:"required"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode" binding:"required"`
}

// DeliveryAssignment is fabricated per request and never persisted.
type DeliveryAssignment struct {
	OrderID             string          `json:"orderId"`
	RestaurantID        string          `json:"restaurantId"`
	DeliveryAddress     DeliveryAddress `json:"deliveryAddress"`
	DeliveryPartnerID   string          `json:"deliveryPartnerId"`
	DeliveryPartnerName string          `json:"deliveryPartnerName"`
	Phone               string          `json:"phone"`
	Status              string          `json:"status"`
	EstimatedPickupTime int             `json:"estimatedPickupTime"`
}

// DeliveryStatusResult echoes a successful status update.
type DeliveryStatusResult struct {
	OrderID   string         `json:"orderId"`
	Status    DeliveryStatus `json:"status"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Message   string         `json:"message"`
}
