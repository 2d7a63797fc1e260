package edgar

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Common errors returned by the client.
var (
	// ErrMissingAPIKey indicates the client was constructed without a credential.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingCursor indicates the server signaled more pages but omitted the
	// pagination cursor. Continuing would re-request the same page forever.
	ErrMissingCursor = errors.New("server reported more pages but returned no cursor")
)

// ErrorKind classifies an APIError. Exactly one kind is assigned per response.
type ErrorKind int

const (
	// ErrorKindAPI is a generic API failure carrying the HTTP status code.
	ErrorKindAPI ErrorKind = iota
	// ErrorKindAuth indicates a rejected credential (HTTP 401).
	ErrorKindAuth
	// ErrorKindNotFound indicates the requested resource does not exist (HTTP 404).
	ErrorKindNotFound
	// ErrorKindRateLimit indicates the request quota was exhausted (HTTP 429).
	ErrorKindRateLimit
	// ErrorKindValidation indicates the server rejected the request parameters (HTTP 400).
	ErrorKindValidation
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindAuth:
		return "authentication"
	case ErrorKindNotFound:
		return "not_found"
	case ErrorKindRateLimit:
		return "rate_limit"
	case ErrorKindValidation:
		return "validation"
	default:
		return "api"
	}
}

// APIError represents an error response from the API, tagged by kind.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string

	// Code is the machine-readable error code supplied by the server, if any.
	Code string

	// ResetAt is the rate-limit reset time from the X-RateLimit-Reset header.
	// Nil when the header was absent or unparseable.
	ResetAt *time.Time
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("edgarhound API error: status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("edgarhound API error: status %d: %s", e.StatusCode, e.Message)
}

// IsAuth reports whether the error indicates an authentication failure.
func (e *APIError) IsAuth() bool {
	return e.Kind == ErrorKindAuth
}

// IsNotFound reports whether the error indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.Kind == ErrorKindNotFound
}

// IsRateLimit reports whether the error indicates rate limiting.
func (e *APIError) IsRateLimit() bool {
	return e.Kind == ErrorKindRateLimit
}

// IsValidation reports whether the error indicates rejected request parameters.
func (e *APIError) IsValidation() bool {
	return e.Kind == ErrorKindValidation
}

// IsTimeout reports whether the error represents a request timeout.
func (e *APIError) IsTimeout() bool {
	return e.StatusCode == http.StatusRequestTimeout
}

// errorBody is the JSON shape of API error responses.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
