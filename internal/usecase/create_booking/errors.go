package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrSlotTaken is returned when the slot was claimed between the
	// availability check and the insert; the atomic insert catches it.
	ErrSlotTaken = errors.New("create_booking: slot is not available")

	// ErrInternal is returned on storage faults.
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError carries every user-facing message for a rejected
// submission, one per offending field, so the customer can correct the form
// in a single pass. No write happens when it is returned.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "create_booking: validation failed: " + strings.Join(e.Messages, "; ")
}

// add appends a message and returns the error for chaining.
func (e *ValidationError) add(msg string) *ValidationError {
	e.Messages = append(e.Messages, msg)
	return e
}

// orNil returns nil when no message was collected.
func (e *ValidationError) orNil() *ValidationError {
	if len(e.Messages) == 0 {
		return nil
	}
	return e
}
