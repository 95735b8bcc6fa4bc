package api

import (
	"errors"
	"fmt"
)

// ValidationError is returned when the backend rejects a payload and explains
// why. Message is the backend's text, meant to be shown as is.
type ValidationError struct {
	StatusCode int
	Message    string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// TransportError covers every other failed call: network errors (StatusCode 0),
// non-success statuses and undecodable bodies.
type TransportError struct {
	Op         string
	StatusCode int
	// Message is the backend's {"error": ...} text, or the status line when absent.
	Message   string
	RequestID string
	Err       error
	fromBody  bool
}

func (e *TransportError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: status %d: %s: %v", e.Op, e.StatusCode, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text to show for err: the backend's message for a
// ValidationError, fallback for anything else.
func UserMessage(err error, fallback string) string {
	if ve := AsValidationError(err); ve != nil && ve.Message != "" {
		return ve.Message
	}
	return fallback
}

func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func AsTransportError(err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}
	return nil
}
