package httpclient

import (
	"errors"
	"fmt"
)

var errNotAnObject = errors.New("response is not a JSON object")

// TransportError is a failure to reach the gateway or a non-2xx reply.
// StatusCode is 0 when no response was received.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("wallex: %s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("wallex: %s %s: status %d: %v", e.Method, e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("wallex: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means the gateway answered but the body was not a JSON object.
type DecodeError struct {
	Path string
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("wallex: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

func IsDecode(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}
