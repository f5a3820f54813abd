package marketing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mktsync/backend/internal/domain/integration"
)

// maxResponseSize is the maximum allowed response size from the
// marketing API (10MB).
const maxResponseSize = 10 * 1024 * 1024

// Adapter implements the MarketingGateway port over the marketing
// platform REST API. Non-2xx responses surface as
// *integration.GatewayError carrying the raw body; transport failures
// wrap integration.ErrGatewayUnavailable.
type Adapter struct {
	config     *Config
	httpClient *http.Client
}

// NewAdapter creates a marketing API adapter with the given
// configuration.
func NewAdapter(config *Config) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// CreateEvent records a metric event.
func (a *Adapter) CreateEvent(ctx context.Context, attrs integration.MetricEventAttributes) error {
	_, err := a.doRequest(ctx, http.MethodPost, a.config.APIBaseURL+"/api/events", newEventBody(attrs), true)
	return err
}

// CreateProfile creates a new profile and returns its id.
func (a *Adapter) CreateProfile(ctx context.Context, attrs integration.ProfileAttributes) (string, error) {
	respBody, err := a.doRequest(ctx, http.MethodPost, a.config.APIBaseURL+"/api/profiles", newProfileBody("", attrs), true)
	if err != nil {
		return "", err
	}

	var resp profileResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("marketing: failed to parse create profile response: %w", err)
	}
	return resp.Data.ID, nil
}

// UpdateProfile updates the profile with the given id.
func (a *Adapter) UpdateProfile(ctx context.Context, id string, attrs integration.ProfileAttributes) error {
	endpoint := fmt.Sprintf("%s/api/profiles/%s", a.config.APIBaseURL, url.PathEscape(id))
	_, err := a.doRequest(ctx, http.MethodPatch, endpoint, newProfileBody(id, attrs), true)
	return err
}

// UpsertOrganizationProfile upserts a profile through the
// organization-scoped client API. Unlike the plain update this needs no
// profile id; the platform matches by email/external id within the
// organization.
func (a *Adapter) UpsertOrganizationProfile(ctx context.Context, attrs integration.ProfileAttributes) error {
	endpoint := fmt.Sprintf("%s/client/profiles?company_id=%s", a.config.APIBaseURL, url.QueryEscape(a.config.CompanyID))
	_, err := a.doRequest(ctx, http.MethodPost, endpoint, newProfileBody("", attrs), false)
	return err
}

// GetProfiles returns one page of profiles matching the filter
// expression.
func (a *Adapter) GetProfiles(ctx context.Context, filter string) ([]integration.Profile, error) {
	endpoint := a.config.APIBaseURL + "/api/profiles"
	if filter != "" {
		endpoint += "?filter=" + url.QueryEscape(filter)
	}

	respBody, err := a.doRequest(ctx, http.MethodGet, endpoint, nil, true)
	if err != nil {
		return nil, err
	}

	var resp profileListResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("marketing: failed to parse profile list response: %w", err)
	}
	return resp.Data, nil
}

// doRequest performs one HTTP call against the marketing API.
// authenticated selects the private-key auth header; the
// organization-scoped client API authenticates by company id instead.
func (a *Adapter) doRequest(ctx context.Context, method, endpoint string, payload any, authenticated bool) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marketing: failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("marketing: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Revision", a.config.Revision)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Authorization", "Klaviyo-API-Key "+a.config.APIKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", integration.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("marketing: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &integration.GatewayError{Status: resp.StatusCode, Body: body}
	}

	return body, nil
}

// Ensure Adapter implements MarketingGateway
var _ integration.MarketingGateway = (*Adapter)(nil)
