// Package commerceapi implements the CustomerLookup port against the
// commerce platform HTTP API.
package commerceapi

import "errors"

// DefaultTimeoutSeconds is the per-request timeout used when none is
// configured.
const DefaultTimeoutSeconds = 15

var (
	// ErrConfigMissingBaseURL indicates the API base URL is not set
	ErrConfigMissingBaseURL = errors.New("commerceapi: config missing API base URL")
	// ErrConfigMissingProjectKey indicates the project key is not set
	ErrConfigMissingProjectKey = errors.New("commerceapi: config missing project key")
	// ErrConfigMissingAuthToken indicates the bearer token is not set
	ErrConfigMissingAuthToken = errors.New("commerceapi: config missing auth token")
)

// Config holds the commerce platform API credentials and endpoint
// settings. Token acquisition is owned by the deployment environment;
// this adapter only consumes a ready bearer token.
type Config struct {
	// APIBaseURL is the commerce API endpoint base URL
	APIBaseURL string
	// ProjectKey scopes all calls to one commerce project
	ProjectKey string
	// AuthToken is the bearer token sent on every call
	AuthToken string
	// TimeoutSeconds is the HTTP client timeout
	TimeoutSeconds int
}

// Validate checks required fields and fills in defaults for the rest.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.ProjectKey == "" {
		return ErrConfigMissingProjectKey
	}
	if c.AuthToken == "" {
		return ErrConfigMissingAuthToken
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return nil
}
