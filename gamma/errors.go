package gamma

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for classifying failures with errors.Is.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("decode error")

	// ErrAPIKeyRequired is returned when no API key is configured.
	ErrAPIKeyRequired = errors.New("API key required")

	// ErrMissingFields is returned by GenerationRequest.Validate when
	// required payload fields are absent.
	ErrMissingFields = errors.New("missing required fields")

	// ErrTimeout is returned when a generation does not reach a terminal
	// status within the configured wait bound.
	ErrTimeout = errors.New("generation did not complete")

	// ErrGenerationFailed is returned when the service reports a failed
	// generation.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrUnknownStatus is returned when the service reports a status this
	// client does not recognize.
	ErrUnknownStatus = errors.New("unknown generation status")
)

// APIError describes an error response from the Gamma API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gamma: %s (status %d)", e.Message, e.Status)
	}
	return "gamma: " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// normalizeError converts an HTTP error response to an APIError with the
// appropriate sentinel.
func normalizeError(status int, body []byte) error {
	var errResp struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	_ = json.Unmarshal(body, &errResp)

	message := errResp.Message
	if message == "" {
		message = http.StatusText(status)
	}

	// Determine sentinel error based on status
	var sentinel error
	switch {
	case status == http.StatusBadRequest || status == http.StatusNotFound || status == http.StatusUnprocessableEntity:
		sentinel = ErrBadRequest
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		sentinel = ErrUnauthorized
	case status == http.StatusTooManyRequests:
		sentinel = ErrRateLimited
	default:
		sentinel = ErrServer
	}

	return &APIError{
		Status:  status,
		Code:    errResp.Code,
		Message: message,
		Err:     sentinel,
	}
}

// newNetworkError creates an APIError for network-related failures.
func newNetworkError(err error) error {
	return &APIError{
		Message: err.Error(),
		Err:     ErrNetwork,
	}
}

// newDecodeError creates an APIError for JSON decode failures.
func newDecodeError(err error) error {
	return &APIError{
		Message: err.Error(),
		Err:     ErrDecode,
	}
}
