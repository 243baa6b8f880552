package get_booking

import (
	"time"

	"github.com/kaimb/booking-service/internal/domain"
	"github.com/kaimb/booking-service/internal/service/bookings/models"
)

// BookingResponse is one booking with its derived total.
type BookingResponse struct {
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

// FromServiceResponse converts the service model to the HTTP model.
func FromServiceResponse(b *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
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
