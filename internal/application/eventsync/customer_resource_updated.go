package eventsync

import (
	"context"

	"go.uber.org/zap"

	"github.com/mktsync/backend/internal/domain/commerce"
	"github.com/mktsync/backend/internal/domain/integration"
)

// CustomerResourceUpdatedName is the administrative name of the
// customer resource updated processor.
const CustomerResourceUpdatedName = "CustomerResourceUpdated"

// CustomerResourceUpdatedProcessor handles customer update messages,
// which carry only a resource reference. It fetches the full customer
// record, resolves the marketing profile by external id, and emits a
// targeted profile update when one exists or a profile creation
// otherwise.
type CustomerResourceUpdatedProcessor struct {
	customers integration.CustomerLookup
	profiles  integration.ProfileFinder
	mapper    *CustomerMapper
	flags     integration.ProcessorDisabler
	logger    *zap.Logger
}

// NewCustomerResourceUpdatedProcessor creates the customer resource
// updated processor.
func NewCustomerResourceUpdatedProcessor(
	customers integration.CustomerLookup,
	profiles integration.ProfileFinder,
	mapper *CustomerMapper,
	flags integration.ProcessorDisabler,
	logger *zap.Logger,
) *CustomerResourceUpdatedProcessor {
	return &CustomerResourceUpdatedProcessor{
		customers: customers,
		profiles:  profiles,
		mapper:    mapper,
		flags:     flags,
		logger:    logger,
	}
}

// Name returns the processor name.
func (p *CustomerResourceUpdatedProcessor) Name() string {
	return CustomerResourceUpdatedName
}

// IsEventValid reports whether the message is a processable customer
// update notification. Update messages never embed the customer, so
// only the tags and the disable flag are checked here.
func (p *CustomerResourceUpdatedProcessor) IsEventValid(msg *commerce.Message) bool {
	if !msg.Is(commerce.ResourceTypeCustomer, commerce.MessageTypeResourceUpdated) {
		return false
	}
	return !p.flags.IsEventDisabled(CustomerResourceUpdatedName)
}

// GenerateEvents fetches the customer and emits a profile update
// against the existing marketing profile, or a profile creation when
// none exists yet. A missing customer surfaces as ErrEntityNotFound.
func (p *CustomerResourceUpdatedProcessor) GenerateEvents(ctx context.Context, msg *commerce.Message) ([]integration.Event, error) {
	customer, err := p.customers.GetCustomerProfile(ctx, msg.Resource.ID)
	if err != nil {
		return nil, err
	}

	profile, err := p.profiles.GetProfileByExternalID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	attrs := p.mapper.ToProfileAttributes(customer)

	if profile != nil {
		p.logger.Info("updating existing marketing profile",
			zap.String("message_id", msg.ID),
			zap.String("customer_id", customer.ID),
			zap.String("profile_id", profile.ID),
		)
		return []integration.Event{{
			Kind:      integration.EventKindProfileResourceUpdated,
			ProfileID: profile.ID,
			Profile:   &attrs,
		}}, nil
	}

	p.logger.Info("no marketing profile for customer, creating one",
		zap.String("message_id", msg.ID),
		zap.String("customer_id", customer.ID),
	)
	return []integration.Event{{
		Kind:    integration.EventKindProfileCreated,
		Profile: &attrs,
	}}, nil
}

// Ensure CustomerResourceUpdatedProcessor implements Processor
var _ Processor = (*CustomerResourceUpdatedProcessor)(nil)
