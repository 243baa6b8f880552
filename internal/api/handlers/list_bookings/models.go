package list_bookings

import (
	"strings"
	"time"

	"github.com/kaimb/booking-service/internal/domain"
	"github.com/kaimb/booking-service/internal/service/bookings/models"
	"github.com/kaimb/booking-service/pkg/ptr"
)

// BookingRow is one admin listing row with the derived total.
type BookingRow struct {
	ID           int64  `json:"id"`
	CreatedAt    string `json:"createdAt"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Suburb       string `json:"suburb"`
	Address      string `json:"address,omitempty"`
	BikeType     string `json:"bikeType"`
	ServiceName  string `json:"serviceName"`
	ServicePrice int    `json:"servicePrice"`
	Addons       string `json:"addons"`
	AddonsPrice  int    `json:"addonsPrice"`
	TravelZone   string `json:"travelZone"`
	TravelFee    int    `json:"travelFee"`
	BookingDate  string `json:"bookingDate"`
	BookingTime  string `json:"bookingTime"`
	Notes        string `json:"notes,omitempty"`
	Status       string `json:"status"`
	Total        int    `json:"total"`
}

// ListSummary is the quick totals over the filtered view.
type ListSummary struct {
	Count       int `json:"count"`
	TotalAmount int `json:"totalAmount"`
}

// ListBookingsResponse is the filtered admin listing.
type ListBookingsResponse struct {
	Bookings []BookingRow `json:"bookings"`
	Summary  ListSummary  `json:"summary"`
}

// ToServiceRequest parses the filter query parameters: status is a
// comma-separated status list, from/to are inclusive YYYY-MM-DD bounds.
func ToServiceRequest(statusStr, fromStr, toStr string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if statusStr != "" {
		for _, s := range strings.Split(statusStr, ",") {
			req.Statuses = append(req.Statuses, strings.TrimSpace(s))
		}
	}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.FromDate = ptr.Ptr(from)
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.ToDate = ptr.Ptr(to)
	}

	return req, nil
}

// FromServiceResponse converts the service listing to the HTTP model.
func FromServiceResponse(resp *models.BookingListResponse) *ListBookingsResponse {
	rows := make([]BookingRow, len(resp.Bookings))
	for i, b := range resp.Bookings {
		rows[i] = BookingRow{
			ID:           b.ID,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
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
			BookingDate:  b.BookingDate.Format(domain.DateFormat),
			BookingTime:  b.BookingTime,
			Notes:        b.Notes,
			Status:       b.Status,
			Total:        b.Total,
		}
	}

	return &ListBookingsResponse{
		Bookings: rows,
		Summary: ListSummary{
			Count:       resp.Summary.Count,
			TotalAmount: resp.Summary.TotalAmount,
		},
	}
}
