package motion

import (
	"errors"
	"fmt"
)

// ErrNoWorkspace is returned when a task is created without an explicit
// workspace and the account has none to fall back to.
var ErrNoWorkspace = errors.New("No workspaces available")

// UpstreamError reports a non-2xx response from the Motion API.
type UpstreamError struct {
	StatusCode int
	StatusText string
	Endpoint   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Motion API error: %d %s", e.StatusCode, e.StatusText)
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Motion API returned invalid JSON for %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
