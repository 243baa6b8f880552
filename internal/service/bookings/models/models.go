package models

import (
	"time"

	"github.com/kaimb/booking-service/internal/domain"
)

// ListBookingsRequest carries the admin screen's filter: a set of statuses
// and an inclusive booking-date range. All parts are optional.
type ListBookingsRequest struct {
	Statuses []string
	FromDate *time.Time
	ToDate   *time.Time
}

// ToDomainFilter validates the statuses and builds the store filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	for _, s := range r.Statuses {
		status, err := domain.ParseStatus(s)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	filter.FromDate = r.FromDate
	filter.ToDate = r.ToDate

	return filter, nil
}

// UpdateStatusRequest sets a booking's status to one of the four values.
type UpdateStatusRequest struct {
	Status string
}

// BookingResponse is one booking row with its derived total.
type BookingResponse struct {
	ID           int64
	CreatedAt    time.Time
	CustomerName string
	Phone        string
	Suburb       string
	Address      string
	BikeType     string
	ServiceName  string
	ServicePrice int
	Addons       string
	AddonsPrice  int
	TravelZone   string
	TravelFee    int
	BookingDate  time.Time
	BookingTime  string
	Notes        string
	Status       string
	Total        int
}

// ListSummary mirrors the admin "quick totals" over the filtered view.
type ListSummary struct {
	Count       int
	TotalAmount int
}

// BookingListResponse is the filtered admin listing plus its summary.
type BookingListResponse struct {
	Bookings []BookingResponse
	Summary  ListSummary
}

// FromDomainBooking annotates one record with its derived total.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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
		BookingTime:  b.BookingTime.String(),
		Notes:        b.Notes,
		Status:       string(b.Status),
		Total:        b.Total(),
	}
}

// FromDomainBookingList converts a listing and accumulates the summary.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		row := FromDomainBooking(b)
		resp.Bookings = append(resp.Bookings, *row)
		resp.Summary.TotalAmount += row.Total
	}
	resp.Summary.Count = len(resp.Bookings)

	return resp
}
