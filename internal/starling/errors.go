package starling

import "fmt"

// AuthError indicates the bearer token was missing or rejected (HTTP 401/403).
// Fatal: the user must supply a valid token.
type AuthError struct {
	Endpoint string
	Status   int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed for %s (HTTP %d): check access token", e.Endpoint, e.Status)
}

// UpstreamError indicates a non-2xx response or an unparseable JSON body.
// Carries the endpoint, status, and raw body for diagnostics.
type UpstreamError struct {
	Endpoint string
	Status   int
	Body     string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream error for %s (HTTP %d): %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("upstream error for %s (HTTP %d): %s", e.Endpoint, e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
