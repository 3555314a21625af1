package alchemy

import (
	"errors"
	"fmt"
	"net/http"
)

// ProviderError is returned by every NotifyClient call that fails.
type ProviderError struct {
	Op         string
	StatusCode int // 0 when the request never got a response
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("alchemy %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("alchemy %s failed with status %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Transient reports whether the failure was a network error, a 5xx or a 429.
// Anything else is the provider rejecting the request.
func (e *ProviderError) Transient() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= http.StatusInternalServerError
}

// NotFound reports whether the provider does not know the webhook.
func (e *ProviderError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is a ProviderError for an unknown webhook.
func IsNotFound(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr) && providerErr.NotFound()
}
