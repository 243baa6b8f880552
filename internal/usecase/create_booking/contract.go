package create_booking

import (
	"context"
	"time"

	"github.com/kaimb/booking-service/internal/domain"
	"github.com/kaimb/booking-service/pkg/types"
)

// BookingRepository is the slice of the booking store this use case needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	IsSlotTaken(ctx context.Context, date time.Time, slot types.TimeString) (bool, error)
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
