package statemachine

import (
	"errors"

	"food-delivery-internal/models"
)

// Transition defines a valid state change in the delivery lifecycle
type Transition struct {
	From models.DeliveryStatus
	To   models.DeliveryStatus
}

// lifecycleOrder is the natural forward progression of a delivery.
var lifecycleOrder = []models.DeliveryStatus{
	models.StatusPlaced,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusPickedUp,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

// validTransitions is the authoritative state machine definition: each
// forward step in lifecycle order, plus CANCELLED from any non-terminal state.
var validTransitions = func() []Transition {
	var ts []Transition
	for i := 0; i < len(lifecycleOrder)-1; i++ {
		ts = append(ts, Transition{From: lifecycleOrder[i], To: lifecycleOrder[i+1]})
	}
	for _, s := range lifecycleOrder[:len(lifecycleOrder)-1] {
		ts = append(ts, Transition{From: s, To: models.StatusCancelled})
	}
	return ts
}()

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

var statusSet = func() map[models.DeliveryStatus]bool {
	m := make(map[models.DeliveryStatus]bool)
	for _, s := range AllStatuses() {
		m[s] = true
	}
	return m
}()

// AllStatuses returns the seven delivery statuses in lifecycle order.
func AllStatuses() []models.DeliveryStatus {
	return append(append([]models.DeliveryStatus{}, lifecycleOrder...), models.StatusCancelled)
}

// IsValidStatus reports whether s is one of the seven delivery statuses.
func IsValidStatus(s models.DeliveryStatus) bool {
	return statusSet[s]
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s models.DeliveryStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.DeliveryStatus) []models.DeliveryStatus {
	var nexts []models.DeliveryStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether a delivery may move from one state to another
func CanTransition(from, to models.DeliveryStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.DeliveryStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
