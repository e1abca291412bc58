package provider

import (
	"context"
	"errors"
	"time"

	owmstudio "github.com/kaim1005kaim/owm-studio"
)

// SleepFunc pauses for at least d. It must not return early unless ctx is
// done, and it never returns an error; this is the sole suspension point of
// the retry path.
type SleepFunc func(ctx context.Context, d time.Duration)

// defaultSleep waits on the wall clock or context cancellation
func defaultSleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// RetryConfig holds retry configuration for upstream calls
type RetryConfig struct {
	// MaxAttempts is the total number of attempts per call (default: 3)
	MaxAttempts int

	// Backoff is the fixed delay schedule indexed by attempt
	Backoff []time.Duration

	// Sleep is the suspension function; replaceable in tests
	Sleep SleepFunc
}

// DefaultRetryConfig returns the fixed-ladder retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts: 3,
		Backoff: []time.Duration{
			1 * time.Second,
			2 * time.Second,
			4 * time.Second,
		},
		Sleep: defaultSleep,
	}
}

// WithSleep sets the suspension function
func (rc *RetryConfig) WithSleep(sleep SleepFunc) *RetryConfig {
	rc.Sleep = sleep
	return rc
}

// backoffFor returns the delay for the given attempt, clamped to the last
// schedule entry
func (rc *RetryConfig) backoffFor(attempt int) time.Duration {
	if len(rc.Backoff) == 0 {
		return 0
	}
	if attempt >= len(rc.Backoff) {
		attempt = len(rc.Backoff) - 1
	}
	return rc.Backoff[attempt]
}

// sleep suspends for the attempt's ladder delay
func (rc *RetryConfig) sleep(ctx context.Context, attempt int) {
	fn := rc.Sleep
	if fn == nil {
		fn = defaultSleep
	}
	fn(ctx, rc.backoffFor(attempt))
}

// retryable reports whether err is worth another attempt: HTTP 500/503 and
// network-level failures are transient; everything else, including 429,
// fails fast so callers can apply their own handling.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var reqErr *owmstudio.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Retryable()
	}
	var upErr *owmstudio.UpstreamError
	if errors.As(err, &upErr) {
		return false
	}
	// Network-level failure (connection reset, DNS, etc.)
	return true
}
