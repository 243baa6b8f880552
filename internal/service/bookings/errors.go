package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking id does not exist.
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidInput is returned for a malformed filter or status value.
	ErrInvalidInput = errors.New("bookings.service: invalid input")

	// ErrInternal is returned on storage faults.
	ErrInternal = errors.New("bookings.service: internal error")
)
