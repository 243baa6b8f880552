package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kaimb/booking-service/internal/domain"
	bookingRepo "github.com/kaimb/booking-service/internal/infra/storage/booking"
)

// UseCase records a customer submission as a new booking.
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

// Execute validates the submission, copies catalog prices onto the record,
// and persists it with status "new". All validation runs before any write.
// The final slot check is the repository's atomic insert: if another
// submission claims the slot between the pre-check and the insert, exactly
// one of them succeeds and the loser gets ErrSlotTaken.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: name=%q, date=%s, time=%s, service=%q",
		req.CustomerName, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceName)

	now := uc.timeProvider.Now()

	if vErr := validateRequest(req, uc.schedule, now); vErr != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", vErr)
		return nil, vErr
	}

	// Last-instant availability guard before the write. The atomic insert
	// below still decides the race.
	taken, err := uc.bookingRepo.IsSlotTaken(ctx, req.Date, req.StartTime)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check slot: %v", err)
		return nil, fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
	}
	if taken {
		uc.logger.Warn("CreateBooking: slot %s %s already taken",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, (&ValidationError{}).add(msgSlotTaken)
	}

	booking := uc.buildBooking(req)

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s %s claimed concurrently",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d", created.ID)

	return toResponse(created), nil
}

// buildBooking assembles the record from a validated request: normalized
// phone, trimmed free text, and prices copied from the catalog so later
// catalog changes never touch this booking.
func (uc *UseCase) buildBooking(req *Request) *domain.Booking {
	servicePrice, _ := domain.ServicePrice(req.ServiceName)
	travelFee, _ := domain.TravelZoneFee(req.TravelZone)

	addonsPrice := 0
	for _, addon := range req.Addons {
		price, _ := domain.AddonPrice(addon)
		addonsPrice += price
	}

	addons := domain.AddonsNone
	if len(req.Addons) > 0 {
		addons = strings.Join(req.Addons, ", ")
	}

	return &domain.Booking{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        normalizePhone(req.Phone),
		Suburb:       strings.TrimSpace(req.Suburb),
		Address:      strings.TrimSpace(req.Address),
		BikeType:     req.BikeType,
		ServiceName:  req.ServiceName,
		ServicePrice: servicePrice,
		Addons:       addons,
		AddonsPrice:  addonsPrice,
		TravelZone:   req.TravelZone,
		TravelFee:    travelFee,
		BookingDate:  req.Date,
		BookingTime:  req.StartTime,
		Notes:        strings.TrimSpace(req.Notes),
		Status:       domain.StatusNew,
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		CreatedAt:    b.CreatedAt,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		Suburb:       b.Suburb,
		Address:      b.Address,
		BikeType:     b.BikeType,
		ServiceName:  b.ServiceName,
		ServicePrice: b.ServicePrice,
		Addons:       b.Addons,
		AddonsPrice:  b.AddonsPrice,
		TravelZone:   b.TravelZone,
		TravelFee:    b.TravelFee,
		BookingDate:  b.BookingDate,
		BookingTime:  b.BookingTime,
		Notes:        b.Notes,
		Status:       string(b.Status),
		Total:        b.Total(),
	}
}
