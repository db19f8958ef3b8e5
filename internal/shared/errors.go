package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrAuthFailed = fmt.Errorf("authentication failed")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrTrackNotFound      = fmt.Errorf("track not found")
	ErrArtistNotFound     = fmt.Errorf("artist not found")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// AuthError reports a rejected token exchange. It carries the upstream status
// code and response body so callers can see why the exchange was refused.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("token exchange rejected: status %d: %s", e.StatusCode, e.Body)
}

// Unwrap makes errors.Is(err, ErrAuthFailed) hold for every AuthError.
func (e *AuthError) Unwrap() error { return ErrAuthFailed }

// RequestError reports a failed catalog fetch other than "not found".
type RequestError struct {
	StatusCode int
	URL        string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("catalog request failed: status %d: %s", e.StatusCode, e.URL)
}

// Unwrap makes errors.Is(err, ErrAPIRequest) hold for every RequestError.
func (e *RequestError) Unwrap() error { return ErrAPIRequest }
