package estimator

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDescription is returned for a blank food description.
	ErrEmptyDescription = errors.New("food description is empty")

	// ErrEmptyResponse is returned when the service answered without text.
	ErrEmptyResponse = errors.New("no response from AI")

	// ErrMalformedResponse is returned when the answer is not a valid estimate.
	ErrMalformedResponse = errors.New("malformed AI response")

	// ErrNotConfigured is returned by the disabled estimator.
	ErrNotConfigured = errors.New("AI estimation is not configured")
)

// RequestError is a transport or HTTP failure talking to the service.
type RequestError struct {
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
	}

	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
