package eventsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/mktsync/backend/internal/domain/integration"
	"github.com/mktsync/backend/internal/infrastructure/telemetry"
)

// duplicateProfileIDPath is the path of the duplicate profile id inside
// the structured 409 error body.
const duplicateProfileIDPath = "errors.0.meta.duplicate_profile_id"

// DeliveryService performs the side-effecting calls against the
// marketing platform for normalized events, including duplicate-profile
// reconciliation. Events of one message are delivered sequentially so
// profile creation lands before the metrics referencing it.
type DeliveryService struct {
	gateway integration.MarketingGateway
	logger  *zap.Logger
}

// NewDeliveryService creates a delivery service over the gateway.
func NewDeliveryService(gateway integration.MarketingGateway, logger *zap.Logger) *DeliveryService {
	return &DeliveryService{
		gateway: gateway,
		logger:  logger,
	}
}

// Deliver sends one normalized event downstream, routed by kind.
// Unknown kinds fail with ErrUnsupportedEventKind before any downstream
// call: a processor emitting one is a programmer error, never silently
// dropped.
func (s *DeliveryService) Deliver(ctx context.Context, ev integration.Event) error {
	ctx, span := telemetry.StartSpan(ctx, "delivery.deliver",
		telemetry.WithAttribute(telemetry.SpanAttrEventKind, ev.Kind.String()),
	)
	defer span.End()

	var err error
	switch ev.Kind {
	case integration.EventKindMetric:
		err = s.gateway.CreateEvent(ctx, *ev.Metric)
	case integration.EventKindProfileCreated:
		err = s.createOrUpdateProfile(ctx, *ev.Profile)
	case integration.EventKindProfileResourceUpdated:
		err = s.gateway.UpdateProfile(ctx, ev.ProfileID, *ev.Profile)
	case integration.EventKindProfileUpdated:
		err = s.gateway.UpsertOrganizationProfile(ctx, *ev.Profile)
	default:
		err = fmt.Errorf("%w: %q", integration.ErrUnsupportedEventKind, ev.Kind)
	}

	if err != nil {
		telemetry.RecordError(span, err)
	}
	return err
}

// DeliverAll delivers the events in order, stopping at the first
// failure.
func (s *DeliveryService) DeliverAll(ctx context.Context, events []integration.Event) error {
	for _, ev := range events {
		if err := s.Deliver(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// createOrUpdateProfile attempts the profile creation, reconciling a
// duplicate-profile conflict by retrying once as an update against the
// duplicate id reported in the error body. A conflict whose body does
// not yield the duplicate id fails with AmbiguousDuplicateError; any
// other failure propagates unchanged. At most one retry, never a loop.
func (s *DeliveryService) createOrUpdateProfile(ctx context.Context, attrs integration.ProfileAttributes) error {
	_, err := s.gateway.CreateProfile(ctx, attrs)
	if err == nil {
		return nil
	}

	var gwErr *integration.GatewayError
	if !errors.As(err, &gwErr) || !gwErr.IsConflict() {
		return err
	}

	duplicateID := gjson.GetBytes(gwErr.Body, duplicateProfileIDPath).String()
	if duplicateID == "" {
		s.logger.Error("could not extract duplicate profile id from conflict response",
			zap.ByteString("response_body", gwErr.Body),
		)
		body, marshalErr := json.Marshal(attrs)
		if marshalErr != nil {
			body = []byte(fmt.Sprintf("%+v", attrs))
		}
		return &integration.AmbiguousDuplicateError{RequestBody: body}
	}

	s.logger.Info("duplicate profile reported, retrying as update",
		zap.String("profile_id", duplicateID),
	)
	return s.gateway.UpdateProfile(ctx, duplicateID, attrs)
}

// GetProfileByExternalID resolves a marketing profile by external id.
// The downstream filter is only a hint: the returned page is scanned
// for an exact match, and nil is returned when none matches exactly.
func (s *DeliveryService) GetProfileByExternalID(ctx context.Context, externalID string) (*integration.Profile, error) {
	ctx, span := telemetry.StartSpan(ctx, "delivery.get_profile_by_external_id",
		telemetry.WithAttribute(telemetry.SpanAttrExternalID, externalID),
	)
	defer span.End()

	filter := fmt.Sprintf("equals(external_id,%q)", externalID)

	profiles, err := s.gateway.GetProfiles(ctx, filter)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	for i := range profiles {
		if profiles[i].Attributes.ExternalID == externalID {
			return &profiles[i], nil
		}
	}
	return nil, nil
}

// Ensure DeliveryService implements ProfileFinder
var _ integration.ProfileFinder = (*DeliveryService)(nil)
