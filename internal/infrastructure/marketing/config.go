// Package marketing implements the MarketingGateway port against the
// marketing platform's JSON:API-style REST interface.
package marketing

import "errors"

// DefaultAPIBaseURL is the marketing platform REST endpoint.
const DefaultAPIBaseURL = "https://a.klaviyo.com"

// DefaultRevision is the API revision requested on every call.
const DefaultRevision = "2023-02-22"

// DefaultTimeoutSeconds is the per-request timeout used when none is
// configured.
const DefaultTimeoutSeconds = 15

var (
	// ErrConfigMissingAPIKey indicates the API key is not set
	ErrConfigMissingAPIKey = errors.New("marketing: config missing API key")
	// ErrConfigMissingCompanyID indicates the organization id is not set
	ErrConfigMissingCompanyID = errors.New("marketing: config missing company id")
)

// Config holds the marketing platform API credentials and endpoint
// settings. Loaded once at process start.
type Config struct {
	// APIKey is the private API key sent on authenticated calls
	APIKey string
	// CompanyID is the organization id used by the organization-scoped
	// profile upsert API
	CompanyID string
	// APIBaseURL is the REST endpoint base URL
	APIBaseURL string
	// Revision is the API revision header value
	Revision string
	// TimeoutSeconds is the HTTP client timeout
	TimeoutSeconds int
}

// NewConfig creates a production configuration with defaults applied.
func NewConfig(apiKey, companyID string) *Config {
	return &Config{
		APIKey:         apiKey,
		CompanyID:      companyID,
		APIBaseURL:     DefaultAPIBaseURL,
		Revision:       DefaultRevision,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Validate checks required fields and fills in defaults for the rest.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrConfigMissingAPIKey
	}
	if c.CompanyID == "" {
		return ErrConfigMissingCompanyID
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.Revision == "" {
		c.Revision = DefaultRevision
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return nil
}
