package eventsync

import (
	"context"

	"go.uber.org/zap"

	"github.com/mktsync/backend/internal/domain/commerce"
	"github.com/mktsync/backend/internal/domain/integration"
)

// CustomerCreatedName is the administrative name of the customer
// created processor.
const CustomerCreatedName = "CustomerCreated"

// CustomerCreatedProcessor handles customer created messages. On
// success it emits exactly two events: a profile creation followed by
// the configured signup metric. Both target the same profile, so the
// ordering only matters for determinism, not correctness.
type CustomerCreatedProcessor struct {
	customers integration.CustomerLookup
	mapper    *CustomerMapper
	flags     integration.ProcessorDisabler
	settings  Settings
	logger    *zap.Logger
}

// NewCustomerCreatedProcessor creates the customer created processor.
func NewCustomerCreatedProcessor(
	customers integration.CustomerLookup,
	mapper *CustomerMapper,
	flags integration.ProcessorDisabler,
	settings Settings,
	logger *zap.Logger,
) *CustomerCreatedProcessor {
	return &CustomerCreatedProcessor{
		customers: customers,
		mapper:    mapper,
		flags:     flags,
		settings:  settings,
		logger:    logger,
	}
}

// Name returns the processor name.
func (p *CustomerCreatedProcessor) Name() string {
	return CustomerCreatedName
}

// IsEventValid reports whether the message is a processable customer
// created notification. Messages with an embedded customer require an
// email; reference-only messages are validated after the fetch.
func (p *CustomerCreatedProcessor) IsEventValid(msg *commerce.Message) bool {
	if !msg.Is(commerce.ResourceTypeCustomer, commerce.MessageTypeCustomerCreated) {
		return false
	}
	if msg.Customer != nil && msg.Customer.Email == "" {
		return false
	}
	return !p.flags.IsEventDisabled(CustomerCreatedName)
}

// GenerateEvents builds the profile creation and signup metric events.
// When the message carries only a resource reference, the full customer
// record is fetched first; a missing customer surfaces as
// ErrEntityNotFound.
func (p *CustomerCreatedProcessor) GenerateEvents(ctx context.Context, msg *commerce.Message) ([]integration.Event, error) {
	customer := msg.Customer
	if customer == nil {
		fetched, err := p.customers.GetCustomerProfile(ctx, msg.Resource.ID)
		if err != nil {
			return nil, err
		}
		customer = fetched
	}

	p.logger.Info("processing customer created message",
		zap.String("message_id", msg.ID),
		zap.String("customer_id", customer.ID),
	)

	profile := p.mapper.ToProfileAttributes(customer)
	signup := p.mapper.ToCustomerMetricEvent(customer, p.settings.CustomerCreatedMetric)

	return []integration.Event{
		{Kind: integration.EventKindProfileCreated, Profile: &profile},
		{Kind: integration.EventKindMetric, Metric: &signup},
	}, nil
}

// Ensure CustomerCreatedProcessor implements Processor
var _ Processor = (*CustomerCreatedProcessor)(nil)
