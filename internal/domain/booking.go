package domain

import (
	"fmt"
	"time"

	"github.com/kaimb/booking-service/pkg/types"
)

// BookingStatus represents the lifecycle tag of a booking record.
type BookingStatus string

const (
	StatusNew       BookingStatus = "new"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDone      BookingStatus = "done"
	StatusCancelled BookingStatus = "cancelled"
)

// AllStatuses lists every valid status, in display order.
var AllStatuses = []BookingStatus{
	StatusNew,
	StatusConfirmed,
	StatusDone,
	StatusCancelled,
}

// ParseStatus validates a status string coming from the API.
func ParseStatus(s string) (BookingStatus, error) {
	for _, status := range AllStatuses {
		if s == string(status) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// Booking is the sole persisted entity: one customer appointment with the
// prices copied from the catalog at booking time, so later catalog changes
// never alter historical records.
type Booking struct {
	ID        int64
	CreatedAt time.Time

	CustomerName string
	Phone        string // digits only, normalized
	Suburb       string
	Address      string
	BikeType     string

	ServiceName  string
	ServicePrice int
	Addons       string // comma-joined labels, or "None"
	AddonsPrice  int
	TravelZone   string
	TravelFee    int

	BookingDate time.Time // calendar date, time-of-day ignored
	BookingTime types.TimeString
	Notes       string

	Status BookingStatus
}

// Total is the derived labour+add-ons+travel amount. Never stored.
func (b *Booking) Total() int {
	return b.ServicePrice + b.AddonsPrice + b.TravelFee
}

// IsCancelled reports whether the booking no longer occupies its slot.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter narrows admin listings. Zero values mean "no restriction".
type BookingsFilter struct {
	Statuses []BookingStatus // empty = all statuses
	FromDate *time.Time      // inclusive
	ToDate   *time.Time      // inclusive
}
