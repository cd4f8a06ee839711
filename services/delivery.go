package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"food-delivery-internal/models"
	"food-delivery-internal/statemachine"
)

// ErrInvalidStatus is returned when a status update names a value outside
// the delivery lifecycle.
var ErrInvalidStatus = errors.New("invalid delivery status")

// Rand is the single randomness capability the delivery mocks need. Tests
// inject a fixed sequence to assert exact outputs.
type Rand interface {
	Intn(n int) int
}

const (
	baseETA   = 25
	minETA    = 15
	maxETA    = 60
	pickupETA = 15

	phonePrefix = "+91 98765"
)

// partnerRoster is the fixed set of mock delivery partners.
var partnerRoster = []string{
	"Raj Kumar", "Amit Sharma", "Priya Singh",
	"Vikram Patel", "Sneha Reddy",
}

// DeliveryService fabricates delivery operations. Nothing here is persisted;
// a real dispatcher and map provider would replace the randomized mocks.
type DeliveryService struct {
	rng Rand
	now func() time.Time
}

// systemRand draws from math/rand's locked global source, which is safe
// across concurrent requests.
type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.Intn(n) }

// NewDeliveryService builds the service around the given randomness source,
// defaulting to math/rand when rng is nil.
func NewDeliveryService(rng Rand) *DeliveryService {
	if rng == nil {
		rng = systemRand{}
	}
	return &DeliveryService{rng: rng, now: time.Now}
}

// CalculateETA estimates delivery time in minutes: a 25-minute base adjusted
// by distance (-5..+10) and traffic (0..+5) variation, clamped to [15, 60].
func (s *DeliveryService) CalculateETA(restaurantID string, address models.DeliveryAddress) int {
	distanceFactor := s.intBetween(-5, 10)
	trafficFactor := s.intBetween(0, 5)

	eta := baseETA + distanceFactor + trafficFactor
	if eta < minETA {
		eta = minETA
	}
	if eta > maxETA {
		eta = maxETA
	}
	return eta
}

// AssignDelivery fabricates a delivery-partner assignment for the order.
// Every field is populated even though none is persisted.
func (s *DeliveryService) AssignDelivery(orderID, restaurantID string, address models.DeliveryAddress) models.DeliveryAssignment {
	return models.DeliveryAssignment{
		OrderID:             orderID,
		RestaurantID:        restaurantID,
		DeliveryAddress:     address,
		DeliveryPartnerID:   fmt.Sprintf("DP%d", s.intBetween(1000, 9999)),
		DeliveryPartnerName: partnerRoster[s.rng.Intn(len(partnerRoster))],
		Phone:               fmt.Sprintf("%s%d", phonePrefix, s.intBetween(10000, 99999)),
		Status:              models.AssignmentStatusAssigned,
		EstimatedPickupTime: pickupETA,
	}
}

// UpdateStatus validates the status against the delivery lifecycle and
// echoes the update with a timestamp.
func (s *DeliveryService) UpdateStatus(orderID string, status models.DeliveryStatus) (models.DeliveryStatusResult, error) {
	if !statemachine.IsValidStatus(status) {
		return models.DeliveryStatusResult{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return models.DeliveryStatusResult{
		OrderID:   orderID,
		Status:    status,
		UpdatedAt: s.now().UTC(),
		Message:   "Order status updated to " + string(status),
	}, nil
}

// intBetween draws uniformly from the closed interval [lo, hi].
func (s *DeliveryService) intBetween(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}
