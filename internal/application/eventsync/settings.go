package eventsync

import (
	"strings"

	"github.com/mktsync/backend/internal/domain/commerce"
)

// Metric names recorded against marketing profiles.
const (
	MetricOrderCreated   = "Order created"
	MetricOrderedProduct = "Ordered Product"
	MetricOrderCancelled = "Order cancelled"
	MetricOrderFulfilled = "Order fulfilled"
)

// DefaultCustomerCreatedMetric is the signup metric name used when none
// is configured.
const DefaultCustomerCreatedMetric = "Account created"

// Settings holds the environment-provided processor configuration.
// Loaded once at process start and passed in explicitly so validity
// checks stay pure and testable.
type Settings struct {
	// OrderCreatedStates is the allow-list of order states for which
	// OrderCreated messages are processed
	OrderCreatedStates []commerce.OrderState

	// OrderStateChangedStates is the allow-list of new order states for
	// which OrderStateChanged messages are processed
	OrderStateChangedStates []commerce.OrderState

	// CustomerCreatedMetric is the metric name for signup events
	CustomerCreatedMetric string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		OrderCreatedStates:      []commerce.OrderState{commerce.OrderStateOpen},
		OrderStateChangedStates: []commerce.OrderState{commerce.OrderStateCancelled, commerce.OrderStateComplete},
		CustomerCreatedMetric:   DefaultCustomerCreatedMetric,
	}
}

// ParseStateList parses a comma or space separated order state
// allow-list. Returns the fallback when the raw value contains no
// states at all.
func ParseStateList(raw string, fallback []commerce.OrderState) []commerce.OrderState {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return fallback
	}
	states := make([]commerce.OrderState, 0, len(fields))
	for _, f := range fields {
		states = append(states, commerce.OrderState(f))
	}
	return states
}
