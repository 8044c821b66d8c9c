package upstream

import (
	"errors"
	"fmt"
)

// ErrUnreachable wraps every failure where no HTTP response came back:
// connection refused, DNS, timeout, cancelled context.
var ErrUnreachable = errors.New("upstream: backend unreachable")

// StatusError is a response with a non-2xx status.
type StatusError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream: %s returned %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("upstream: %s returned %d: %s", e.Endpoint, e.Status, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// UserMessage is what a banner shows for err.
func UserMessage(err error) string {
	var se *StatusError
	switch {
	case errors.As(err, &se) && se.Message != "":
		return se.Message
	case errors.As(err, &se):
		return fmt.Sprintf("The server rejected the request (status %d).", se.Status)
	case errors.Is(err, ErrUnreachable):
		return "The server could not be reached. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
