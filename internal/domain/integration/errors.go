package integration

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEntityNotFound indicates a referenced upstream entity is missing
	ErrEntityNotFound = errors.New("integration: referenced entity not found")
	// ErrUnsupportedEventKind indicates a processor emitted an event kind
	// the delivery service does not recognize. Programmer error.
	ErrUnsupportedEventKind = errors.New("integration: unsupported event kind")
	// ErrGatewayUnavailable indicates the marketing platform could not be reached
	ErrGatewayUnavailable = errors.New("integration: marketing platform unavailable")
)

// GatewayError is a non-2xx response from the marketing platform API.
// Body holds the raw response body so callers can inspect structured
// error details (e.g. duplicate profile conflicts).
type GatewayError struct {
	Status int
	Body   []byte
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	return fmt.Sprintf("integration: marketing API returned HTTP %d", e.Status)
}

// IsConflict returns true for duplicate-profile conflict responses.
func (e *GatewayError) IsConflict() bool {
	return e.Status == http.StatusConflict
}

// AmbiguousDuplicateError indicates a duplicate-profile conflict whose
// response body did not contain an extractable duplicate profile id.
// RequestBody carries the original create request for operator
// diagnosis.
type AmbiguousDuplicateError struct {
	RequestBody []byte
}

// Error implements the error interface.
func (e *AmbiguousDuplicateError) Error() string {
	return fmt.Sprintf("integration: duplicated profile, could not extract duplicate profile id from error response; request body: %s", e.RequestBody)
}
