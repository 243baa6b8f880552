package get_available_slots

import (
	"context"
	"time"

	"github.com/kaimb/booking-service/pkg/types"
)

// BookingRepository is the slice of the booking store this use case needs.
type BookingRepository interface {
	// TakenTimes returns the time labels of non-cancelled bookings on a date.
	TakenTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// TimeProvider supplies the current moment, injectable for tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the printf-style logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
