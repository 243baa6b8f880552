package create_booking

import (
	"time"

	"github.com/kaimb/booking-service/pkg/types"
)

// Request is a customer submission, already parsed but not yet validated.
type Request struct {
	CustomerName string
	Phone        string
	Suburb       string
	Address      string
	BikeType     string
	ServiceName  string
	Addons       []string
	TravelZone   string
	Date         time.Time
	StartTime    types.TimeString
	Notes        string
	Consent      bool
}

// Response is the recorded booking, with prices as copied at booking time
// and the derived total.
type Response struct {
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
	BookingTime  types.TimeString
	Notes        string
	Status       string
	Total        int
}
