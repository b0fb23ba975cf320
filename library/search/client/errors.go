package client

import (
	"fmt"

	"github.com/Laisky/errors/v2"
)

// ErrorKind classifies why an API call failed.
type ErrorKind int

const (
	// KindRequest means the request could not be built or its response could not be read.
	KindRequest ErrorKind = iota
	// KindNoResponse means the request was sent but no response arrived.
	KindNoResponse
	// KindResponse means the server answered with a non 2xx status.
	KindResponse
	// KindServerReported means a 2xx response carried an error field.
	KindServerReported
)

func (k ErrorKind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNoResponse:
		return "no_response"
	case KindResponse:
		return "response"
	case KindServerReported:
		return "server_reported"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// APIError is returned by every Client method on failure.
type APIError struct {
	Kind ErrorKind
	// StatusCode is set for KindResponse and KindServerReported.
	StatusCode int
	// Message is the server supplied error text, may be empty.
	Message string
	Err     error
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s error (status %d): %s: %v", e.Kind, e.StatusCode, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s error", e.Kind)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts the APIError from err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
