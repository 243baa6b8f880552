package create_booking

import (
	"time"

	"github.com/kaimb/booking-service/internal/domain"
	createBooking "github.com/kaimb/booking-service/internal/usecase/create_booking"
	"github.com/kaimb/booking-service/pkg/types"
)

// CreateBookingRequest is the customer submission payload.
type CreateBookingRequest struct {
	CustomerName string   `json:"customerName"`
	Phone        string   `json:"phone"`
	Suburb       string   `json:"suburb"`
	Address      string   `json:"address,omitempty"`
	BikeType     string   `json:"bikeType"`
	ServiceName  string   `json:"serviceName"`
	Addons       []string `json:"addons,omitempty"`
	TravelZone   string   `json:"travelZone"`
	BookingDate  string   `json:"bookingDate"` // "2025-10-15"
	BookingTime  string   `json:"bookingTime"` // "10:00"
	Notes        string   `json:"notes,omitempty"`
	Consent      bool     `json:"consent"`
}

// BookingResponse is the recorded booking echoed back to the customer.
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

// ToUseCaseRequest parses the date and time fields of the submission.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Suburb:       r.Suburb,
		Address:      r.Address,
		BikeType:     r.BikeType,
		ServiceName:  r.ServiceName,
		Addons:       r.Addons,
		TravelZone:   r.TravelZone,
		Date:         bookingDate,
		StartTime:    startTime,
		Notes:        r.Notes,
		Consent:      r.Consent,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		CustomerName: resp.CustomerName,
		Phone:        resp.Phone,
		Suburb:       resp.Suburb,
		Address:      resp.Address,
		BikeType:     resp.BikeType,
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
		Addons:       resp.Addons,
		AddonsPrice:  resp.AddonsPrice,
		TravelZone:   resp.TravelZone,
		TravelFee:    resp.TravelFee,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		BookingTime:  resp.BookingTime.String(),
		Notes:        resp.Notes,
		Status:       resp.Status,
		Total:        resp.Total,
	}
}
