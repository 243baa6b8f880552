package bookings

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/kaimb/booking-service/internal/domain"
	bookingRepo "github.com/kaimb/booking-service/internal/infra/storage/booking"
	"github.com/kaimb/booking-service/internal/service/bookings/models"
)

// csvHeader is the export column order: every stored column plus the
// derived total.
var csvHeader = []string{
	"id",
	"created_at",
	"customer_name",
	"phone",
	"suburb",
	"address",
	"bike_type",
	"service_name",
	"service_price",
	"addons",
	"addons_price",
	"travel_zone",
	"travel_fee",
	"booking_date",
	"booking_time",
	"notes",
	"status",
	"total",
}

// Service is the admin review side: list, filter, status updates, export.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the admin bookings service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List returns bookings matching the filter, newest booking first, each
// annotated with its derived total, plus the filtered view's quick totals.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: statuses=%v, from=%v, to=%v", req.Statuses, req.FromDate, req.ToDate)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID returns one booking with its derived total.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// UpdateStatus sets the booking's status to any of the four values. There is
// no transition graph: the operator may reopen done or cancelled bookings,
// and cancelling frees the slot for new customers.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: booking id=%d to status=%s", id, req.Status)

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%d", req.Status, id)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d now %s", id, status)
	return nil
}

// ExportCSV streams the full booking list as UTF-8 CSV: header row, one row
// per booking, all statuses included.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: ExportCSV - write header: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		record := []string{
			strconv.FormatInt(b.ID, 10),
			b.CreatedAt.Format("2006-01-02 15:04:05"),
			b.CustomerName,
			b.Phone,
			b.Suburb,
			b.Address,
			b.BikeType,
			b.ServiceName,
			strconv.Itoa(b.ServicePrice),
			b.Addons,
			strconv.Itoa(b.AddonsPrice),
			b.TravelZone,
			strconv.Itoa(b.TravelFee),
			b.BookingDate.Format(domain.DateFormat),
			b.BookingTime.String(),
			b.Notes,
			string(b.Status),
			strconv.Itoa(b.Total()),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%w: ExportCSV - write row: %v", ErrInternal, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: ExportCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d bookings", len(bookings))
	return nil
}
