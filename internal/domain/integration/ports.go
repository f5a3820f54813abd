package integration

import (
	"context"

	"github.com/mktsync/backend/internal/domain/commerce"
)

// CustomerLookup fetches full customer records from the commerce
// platform when a message carries only a resource reference.
// Implementations return ErrEntityNotFound (possibly wrapped) when the
// referenced customer does not exist.
type CustomerLookup interface {
	GetCustomerProfile(ctx context.Context, id string) (*commerce.Customer, error)
}

// ProcessorDisabler reports whether a processor has been
// administratively disabled by name. Backed by external configuration;
// must be pure and cheap, it runs inside validity checks.
type ProcessorDisabler interface {
	IsEventDisabled(processorName string) bool
}

// MarketingGateway is the port to the downstream marketing platform
// API. Adapters translate non-2xx responses into *GatewayError so that
// callers can inspect the status and structured error body; transport
// failures propagate as plain wrapped errors.
type MarketingGateway interface {
	// CreateEvent records a metric event
	CreateEvent(ctx context.Context, attrs MetricEventAttributes) error

	// CreateProfile creates a new profile and returns its id
	CreateProfile(ctx context.Context, attrs ProfileAttributes) (string, error)

	// UpdateProfile updates the profile with the given id
	UpdateProfile(ctx context.Context, id string, attrs ProfileAttributes) error

	// UpsertOrganizationProfile upserts a profile through the
	// organization-scoped API, used when no profile id is known
	UpsertOrganizationProfile(ctx context.Context, attrs ProfileAttributes) error

	// GetProfiles returns one page of profiles matching the filter
	// expression. The filter is a hint; callers own exact matching.
	GetProfiles(ctx context.Context, filter string) ([]Profile, error)
}

// ProfileFinder resolves marketing profiles by the commerce-side
// external id. Used by processors that need idempotent lookups outside
// the create/update flow.
type ProfileFinder interface {
	GetProfileByExternalID(ctx context.Context, externalID string) (*Profile, error)
}
