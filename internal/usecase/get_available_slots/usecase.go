package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/kaimb/booking-service/internal/domain"
)

// UseCase computes the slots offerable to a customer on a given date.
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     domain.WorkSchedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case with the production clock.
func NewUseCase(bookingRepo BookingRepository, schedule domain.WorkSchedule, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute generates the day's slots and removes the ones that are already
// booked or start inside the lead-time window.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, now, uc.schedule.MaxDaysAhead); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	slots := uc.schedule.SlotsForDate(req.Date)
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no slots on %s (not a work day)", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: slots}, nil
	}

	taken, err := uc.bookingRepo.TakenTimes(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get taken times: %v", err)
		return nil, fmt.Errorf("%w: failed to get taken times: %v", ErrInternal, err)
	}

	available := filterAvailable(slots, taken, req.Date, now, uc.schedule.MinLeadTimeMinutes)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		len(available), len(slots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: available}, nil
}

// validateDate rejects zero dates, past dates, and dates beyond the booking
// window.
func validateDate(date time.Time, now time.Time, maxDaysAhead int) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if isDateInPast(date, now) {
		return ErrDateInPast
	}

	if maxDaysAhead > 0 {
		maxDate := midnightUTC(now).AddDate(0, 0, maxDaysAhead)
		if midnightUTC(date).After(maxDate) {
			return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarAhead, maxDaysAhead)
		}
	}

	return nil
}
