package api

import (
	"errors"
	"fmt"
)

// ErrUnexpectedShape reports a success response whose body could not be
// decoded into the expected model.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// StatusError reports a non-2xx response from the orchestrator. Status holds
// the full status line ("404 Not Found") and Message the raw response body.
type StatusError struct {
	Code    int
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error %s: %s", e.Status, e.Message)
}

// TransportError wraps a failure to complete the round trip at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
