package client

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the admin socket closes before sending a
// single non-blank line.
var ErrEmptyResponse = errors.New("empty response from admin socket")

// ConnectError is returned when the connection to the admin socket cannot be
// opened at all. It keeps the endpoint exactly as the user supplied it.
type ConnectError struct {
	Endpoint string
	Err      error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect to admin socket at %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// TimeoutError is returned when the configured timeout elapses while talking
// to the admin socket. It only occurs when a timeout was requested; by
// default the client waits forever.
type TimeoutError struct {
	Endpoint string
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for admin socket at %s: %v", e.Endpoint, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }
