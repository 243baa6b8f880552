package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kaimb/booking-service/internal/domain"
	"github.com/kaimb/booking-service/pkg/psqlbuilder"
	"github.com/kaimb/booking-service/pkg/types"
)

// uniqueViolation is the postgres error code raised by the partial unique
// index on (booking_date, booking_time) for non-cancelled rows.
const uniqueViolation = "23505"

var bookingColumns = []string{
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
}

// Repository is the persistence boundary for bookings. It performs no
// business-rule validation; callers validate before writing.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create persists a new booking and fills in its id and creation timestamp.
// The partial unique index makes the insert an atomic "insert if the slot is
// free among non-cancelled bookings"; a collision surfaces as ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
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
		).
		Values(
			b.CustomerName,
			b.Phone,
			b.Suburb,
			b.Address,
			b.BikeType,
			b.ServiceName,
			b.ServicePrice,
			b.Addons,
			b.AddonsPrice,
			b.TravelZone,
			b.TravelFee,
			b.BookingDate.Format(domain.DateFormat),
			b.BookingTime,
			b.Notes,
			b.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByID returns the booking with the given id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// List returns bookings matching the filter, newest booking first
// (booking_date, booking_time, id descending).
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("booking_date DESC", "booking_time DESC", "id DESC")

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statuses})
	}
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": filter.FromDate.Format(domain.DateFormat)})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": filter.ToDate.Format(domain.DateFormat)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus overwrites the status of the booking with the given id.
// Any of the four statuses may be set over any other; the operator is
// trusted to reopen done or cancelled bookings.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// IsSlotTaken reports whether a non-cancelled booking exists for the exact
// (date, time) pair.
func (r *Repository) IsSlotTaken(ctx context.Context, date time.Time, slot types.TimeString) (bool, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat), "booking_time": slot}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// TakenTimes returns the time labels of non-cancelled bookings on the given
// date, for the availability filter.
func (r *Repository) TakenTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	query, args, err := psqlbuilder.Select("booking_time").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("booking_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TakenTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TakenTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	taken := make([]types.TimeString, 0)
	for rows.Next() {
		var slot types.TimeString
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: TakenTimes - scan booking_time: %v", ErrScanRow, err)
		}
		taken = append(taken, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TakenTimes - rows error: %v", ErrScanRow, err)
	}

	return taken, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking reads one row in bookingColumns order.
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt sql.NullTime
	var bookingDate time.Time

	err := row.Scan(
		&b.ID,
		&createdAt,
		&b.CustomerName,
		&b.Phone,
		&b.Suburb,
		&b.Address,
		&b.BikeType,
		&b.ServiceName,
		&b.ServicePrice,
		&b.Addons,
		&b.AddonsPrice,
		&b.TravelZone,
		&b.TravelFee,
		&bookingDate,
		&b.BookingTime,
		&b.Notes,
		&b.Status,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.BookingDate = bookingDate

	return &b, nil
}

// scanBookings collects all rows of a list query.
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
