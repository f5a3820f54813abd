package eventsync

import (
	"context"

	"go.uber.org/zap"

	"github.com/mktsync/backend/internal/domain/commerce"
	"github.com/mktsync/backend/internal/domain/integration"
)

// Dispatcher routes one inbound message to the matching processors.
// More than one processor may match the same message, though typical
// configurations are 1:1 by resource and message type.
type Dispatcher struct {
	processors []Processor
	logger     *zap.Logger
}

// NewDispatcher creates a dispatcher over a fixed set of processors.
func NewDispatcher(logger *zap.Logger, processors ...Processor) *Dispatcher {
	return &Dispatcher{
		processors: processors,
		logger:     logger,
	}
}

// Dispatch runs validity checks for every registered processor and
// concatenates the events generated by all that match, preserving
// per-processor ordering. A message no processor matches yields an
// empty result, not an error: unmatched messages are ignored by design.
// The first generation failure aborts the dispatch and surfaces to the
// caller.
func (d *Dispatcher) Dispatch(ctx context.Context, msg *commerce.Message) ([]integration.Event, error) {
	var events []integration.Event

	matched := 0
	for _, p := range d.processors {
		if !p.IsEventValid(msg) {
			continue
		}
		matched++

		generated, err := p.GenerateEvents(ctx, msg)
		if err != nil {
			return nil, err
		}
		events = append(events, generated...)
	}

	if matched == 0 {
		d.logger.Debug("no processor matched message",
			zap.String("message_id", msg.ID),
			zap.String("resource_type", msg.Resource.TypeID.String()),
			zap.String("message_type", msg.Type),
		)
	}

	return events, nil
}
