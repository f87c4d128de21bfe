package client

import (
	"errors"
	"fmt"
)

// Error kinds, one per remote operation. A transport failure and a
// non-success HTTP status surface as the same kind.
var (
	ErrFetch  = errors.New("failed to fetch subscriptions")
	ErrCreate = errors.New("failed to create subscription")
	ErrUpdate = errors.New("failed to update subscription")
	ErrDelete = errors.New("failed to delete subscription")
)

// RequestError is returned by every Client method on failure.
// StatusCode is zero when no response was received.
type RequestError struct {
	Kind       error
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: server responded with status %d", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
