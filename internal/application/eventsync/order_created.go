package eventsync

import (
	"context"

	"go.uber.org/zap"

	"github.com/mktsync/backend/internal/domain/commerce"
	"github.com/mktsync/backend/internal/domain/integration"
)

// OrderCreatedName is the administrative name of the order created
// processor.
const OrderCreatedName = "OrderCreated"

// OrderCreatedProcessor handles order created messages. It emits one
// order-level metric event followed by one metric event per line item.
// Line item events reuse the order's creation time, not their own.
type OrderCreatedProcessor struct {
	flags    integration.ProcessorDisabler
	settings Settings
	logger   *zap.Logger
}

// NewOrderCreatedProcessor creates the order created processor.
func NewOrderCreatedProcessor(flags integration.ProcessorDisabler, settings Settings, logger *zap.Logger) *OrderCreatedProcessor {
	return &OrderCreatedProcessor{
		flags:    flags,
		settings: settings,
		logger:   logger,
	}
}

// Name returns the processor name.
func (p *OrderCreatedProcessor) Name() string {
	return OrderCreatedName
}

// IsEventValid reports whether the message is a processable order
// created notification: the order payload must be embedded, must carry
// a customer reference (email and/or id), and its state must be in the
// configured allow-list.
func (p *OrderCreatedProcessor) IsEventValid(msg *commerce.Message) bool {
	if !msg.Is(commerce.ResourceTypeOrder, commerce.MessageTypeOrderCreated) {
		return false
	}
	if msg.Order == nil || !msg.Order.HasCustomerReference() {
		return false
	}
	if !stateAllowed(msg.Order.OrderState, p.settings.OrderCreatedStates) {
		return false
	}
	return !p.flags.IsEventDisabled(OrderCreatedName)
}

// GenerateEvents builds 1 + lineItemCount metric events for the order.
func (p *OrderCreatedProcessor) GenerateEvents(ctx context.Context, msg *commerce.Message) ([]integration.Event, error) {
	order := msg.Order

	p.logger.Info("processing order created message",
		zap.String("message_id", msg.ID),
		zap.String("order_id", order.ID),
		zap.Int("line_items", len(order.LineItems)),
	)

	profile := profileRefFromOrder(order)

	events := make([]integration.Event, 0, 1+len(order.LineItems))
	events = append(events, integration.Event{
		Kind: integration.EventKindMetric,
		Metric: &integration.MetricEventAttributes{
			Profile:    profile,
			Metric:     integration.Metric{Name: MetricOrderCreated},
			Value:      order.TotalPrice.Decimal(),
			Properties: entitySnapshot(order),
			UniqueID:   order.ID,
			Time:       order.CreatedAt,
		},
	})

	for i := range order.LineItems {
		item := &order.LineItems[i]
		events = append(events, integration.Event{
			Kind: integration.EventKindMetric,
			Metric: &integration.MetricEventAttributes{
				Profile:    profile,
				Metric:     integration.Metric{Name: MetricOrderedProduct},
				Value:      item.TotalPrice.Decimal(),
				Properties: entitySnapshot(item),
				UniqueID:   item.ID,
				Time:       order.CreatedAt,
			},
		})
	}

	return events, nil
}

// Ensure OrderCreatedProcessor implements Processor
var _ Processor = (*OrderCreatedProcessor)(nil)
