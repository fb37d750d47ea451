package eventsource

import (
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
)

// EndpointError is the error Open returns when the endpoint string cannot
// be parsed into a usable URL. It is never retried.
type EndpointError struct {
	// The endpoint string that failed to parse.
	Endpoint string
	// The reason the endpoint was rejected.
	Err error
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("invalid endpoint %q: %v", e.Endpoint, e.Err)
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

// ConnectionError is the error Open returns when the transport connection
// to a well-formed endpoint cannot be established.
type ConnectionError struct {
	// The endpoint the connection was attempted to.
	Endpoint string
	// The reason the connection failed.
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %q failed: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Temporary returns whether the underlying error is temporary.
func (e *ConnectionError) Temporary() bool {
	var t interface{ Temporary() bool }
	if errors.As(e.Err, &t) {
		return t.Temporary()
	}
	return false
}

// Timeout returns whether the underlying error is caused by a timeout.
func (e *ConnectionError) Timeout() bool {
	var t interface{ Timeout() bool }
	if errors.As(e.Err, &t) {
		return t.Timeout()
	}
	return false
}

func (e *ConnectionError) toPermanent() error {
	if e.Temporary() || e.Timeout() {
		return e
	}
	return backoff.Permanent(e)
}
