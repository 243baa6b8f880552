package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for a missing or malformed request.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrDateInPast is returned for dates before today.
	ErrDateInPast = errors.New("get_available_slots: date is in the past")

	// ErrDateTooFarAhead is returned for dates beyond the booking window.
	ErrDateTooFarAhead = errors.New("get_available_slots: date is too far in the future")

	// ErrInternal is returned on storage faults.
	ErrInternal = errors.New("get_available_slots: internal error")
)
