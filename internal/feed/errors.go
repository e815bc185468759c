package feed

import (
	"errors"
	"fmt"
	"strings"
)

// APIError is a terminal feed failure: the feed answered, and the
// answer was not retryable (bad token, bad parameters, unknown event).
type APIError struct {
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("feed %s: %s", e.Endpoint, e.Message)
}

// TransientError wraps a failure worth retrying with backoff: network
// errors, 5xx responses, and feed-reported rate limiting.
type TransientError struct {
	Endpoint string
	Err      error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("feed %s: %v", e.Endpoint, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// ErrRateLimited marks a success=0 response whose error text indicates
// the request quota was exceeded.
var ErrRateLimited = errors.New("rate limited by feed")

// IsRetryable reports whether err should be retried with backoff.
func IsRetryable(err error) bool {
	var t *TransientError
	return errors.As(err, &t)
}

// rateLimitText matches the feed's rate-limit error strings.
func rateLimitText(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "rate limit")
}
