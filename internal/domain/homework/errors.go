// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the recoverable failures of a polling cycle.
type ErrorKind string

const (
	KindTransport     ErrorKind = "transport"
	KindServerStatus  ErrorKind = "server_status"
	KindValidation    ErrorKind = "validation"
	KindUnknownStatus ErrorKind = "unknown_status"
	KindDelivery      ErrorKind = "delivery"
)

// FetchError is returned by the poller when the API could not be queried
// or answered with a non-success status.
type FetchError struct {
	Kind          ErrorKind // KindTransport or KindServerStatus
	StatusCode    int       // HTTP status, zero for transport failures
	Code          string    // "code" from the error body, if any
	ServerMessage string    // "message" from the error body, if any
	Err           error
}

func (e *FetchError) Error() string {
	if e.Kind == KindServerStatus {
		return fmt.Sprintf("homework API returned HTTP %d (code %q): %s", e.StatusCode, e.Code, e.ServerMessage)
	}
	return fmt.Sprintf("homework API request failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError means a response body is missing a required field or has one of the wrong shape.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid homework API response: %s %s", e.Field, e.Reason)
}

// UnknownStatusError means the API reported a status that is not in the vocabulary.
type UnknownStatusError struct {
	HomeworkName string
	Status       Status
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown status %q for submission %q", e.Status, e.HomeworkName)
}

// DeliveryError wraps a failure of the outbound message transport.
type DeliveryError struct {
	ChatID int64
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver message to chat %d: %v", e.ChatID, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// KindOf reports the kind of a cycle error, or "" if err is not part of the taxonomy.
func KindOf(err error) ErrorKind {
	var (
		fetchErr    *FetchError
		validErr    *ValidationError
		unknownErr  *UnknownStatusError
		deliveryErr *DeliveryError
	)
	switch {
	case errors.As(err, &fetchErr):
		return fetchErr.Kind
	case errors.As(err, &validErr):
		return KindValidation
	case errors.As(err, &unknownErr):
		return KindUnknownStatus
	case errors.As(err, &deliveryErr):
		return KindDelivery
	default:
		return ""
	}
}
