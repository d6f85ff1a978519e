package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks a transport-level failure: the request never produced
// an HTTP response. Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// HTTPError is a non-2xx response. Body carries the raw response text
// verbatim for diagnostics.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Body)
}
