package owmstudio

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrRetriesExhausted is returned after all retry attempts against the
// upstream model API have failed.
var ErrRetriesExhausted = errors.New("upstream retries exhausted")

// ErrNoContent is returned when a response envelope carries no content parts.
var ErrNoContent = errors.New("no content parts in response")

// ErrQuotaExhausted reports that a tenant's image budget is spent. Batch
// generation surfaces it through error hooks for each skipped item.
var ErrQuotaExhausted = errors.New("tenant image quota exhausted")

// RequestError represents a non-success HTTP reply from the upstream model API
type RequestError struct {
	Status int
	Body   string
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("upstream request failed with status %d: %s", e.Status, e.Body)
}

// Retryable reports whether the reply is transient and worth retrying
func (e *RequestError) Retryable() bool {
	return e.Status == http.StatusInternalServerError || e.Status == http.StatusServiceUnavailable
}

// RateLimited reports whether the reply signals the upstream request ceiling
func (e *RequestError) RateLimited() bool {
	return e.Status == http.StatusTooManyRequests
}

// UpstreamError represents an error object embedded in an otherwise
// successful (HTTP 200) upstream response. Never retried.
type UpstreamError struct {
	Code    int
	Message string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream reported error %d: %s", e.Code, e.Message)
}

// AnnotationParseError is returned when annotation output cannot be parsed
// as JSON even after both repair passes.
type AnnotationParseError struct {
	Raw string
	Err error
}

// Error implements the error interface
func (e *AnnotationParseError) Error() string {
	return fmt.Sprintf("annotation output is not valid JSON after repair: %v", e.Err)
}

// Unwrap returns the underlying parse error
func (e *AnnotationParseError) Unwrap() error {
	return e.Err
}

// IsRateLimited reports whether err signals an HTTP 429 from the upstream.
// The structured status code is checked first; the substring fallback covers
// wrapped errors where the upstream embeds the code in free text.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.RateLimited()
	}
	return strings.Contains(err.Error(), "429")
}
