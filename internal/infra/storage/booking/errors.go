package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking exists with the given id.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken is returned when an insert collides with a non-cancelled
	// booking for the same (date, time).
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
