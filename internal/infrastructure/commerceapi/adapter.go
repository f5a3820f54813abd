package commerceapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mktsync/backend/internal/domain/commerce"
	"github.com/mktsync/backend/internal/domain/integration"
)

// maxResponseSize is the maximum allowed response size from the
// commerce API (10MB).
const maxResponseSize = 10 * 1024 * 1024

// Adapter implements the CustomerLookup port over the commerce
// platform REST API.
type Adapter struct {
	config     *Config
	httpClient *http.Client
}

// NewAdapter creates a commerce API adapter with the given
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

// GetCustomerProfile fetches the full customer record by id. A missing
// customer surfaces as integration.ErrEntityNotFound.
func (a *Adapter) GetCustomerProfile(ctx context.Context, id string) (*commerce.Customer, error) {
	endpoint := fmt.Sprintf("%s/%s/customers/%s",
		a.config.APIBaseURL, url.PathEscape(a.config.ProjectKey), url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("commerceapi: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.config.AuthToken)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("commerceapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("commerceapi: failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: customer %s", integration.ErrEntityNotFound, id)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("commerceapi: customer lookup returned HTTP %d", resp.StatusCode)
	}

	var customer commerce.Customer
	if err := json.Unmarshal(body, &customer); err != nil {
		return nil, fmt.Errorf("commerceapi: failed to parse customer response: %w", err)
	}
	return &customer, nil
}

// Ensure Adapter implements CustomerLookup
var _ integration.CustomerLookup = (*Adapter)(nil)
