// Package eventsync translates commerce platform change messages into
// normalized marketing platform events and delivers them downstream.
package eventsync

import (
	"context"

	"github.com/mktsync/backend/internal/domain/commerce"
	"github.com/mktsync/backend/internal/domain/integration"
)

// Processor validates one kind of inbound message and produces zero or
// more normalized outbound events for it. The variant set is fixed at
// build time; the dispatcher receives the full set at construction.
type Processor interface {
	// Name returns the processor name used for administrative disabling
	Name() string

	// IsEventValid reports whether this processor handles the message.
	// It is a pure predicate and never returns an error: a false result
	// simply means the dispatcher skips this processor.
	IsEventValid(msg *commerce.Message) bool

	// GenerateEvents builds the normalized events for a valid message.
	// It may fetch missing related data (e.g. the full customer record
	// when the message carries only a reference id) and must not mutate
	// the message.
	GenerateEvents(ctx context.Context, msg *commerce.Message) ([]integration.Event, error)
}

// stateAllowed reports whether the order state is in the allow-list.
func stateAllowed(state commerce.OrderState, allowed []commerce.OrderState) bool {
	for _, s := range allowed {
		if s == state {
			return true
		}
	}
	return false
}
