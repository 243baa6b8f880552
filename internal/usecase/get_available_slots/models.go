package get_available_slots

import (
	"time"

	"github.com/kaimb/booking-service/pkg/types"
)

// Request asks for the offerable slots on one calendar date.
type Request struct {
	Date time.Time
}

// Response lists the slots currently offerable to a customer, in
// chronological order. Empty means the date offers nothing; that is not an
// error, the customer picks another date.
type Response struct {
	Date  time.Time
	Slots []types.TimeString
}
