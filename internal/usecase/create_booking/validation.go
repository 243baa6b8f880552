package create_booking

import (
	"strings"
	"time"
	"unicode"

	"github.com/kaimb/booking-service/internal/domain"
	"github.com/kaimb/booking-service/pkg/types"
)

// User-facing validation messages. Each names the one offending field.
const (
	msgNameRequired    = "Name is required."
	msgPhoneRequired   = "Phone is required."
	msgPhoneInvalid    = "Phone number looks invalid."
	msgSuburbRequired  = "Suburb is required."
	msgConsentRequired = "You must confirm the details."
	msgServiceUnknown  = "Selected service is not offered."
	msgAddonUnknown    = "Selected add-on is not offered."
	msgZoneUnknown     = "Selected travel zone is not offered."
	msgDateRequired    = "Booking date is required."
	msgDateInPast      = "Booking date has already passed. Pick another date."
	msgDateTooFar      = "Booking date is too far ahead. Pick an earlier date."
	msgTimeRequired    = "Time slot is required."
	msgTimeNotASlot    = "That time is not a bookable slot on this day."
	msgTimeTooSoon     = "That time is too soon. Pick a later slot."
	msgSlotTaken       = "That time just got booked. Pick another slot."
)

// normalizePhone strips surrounding whitespace plus inner spaces and hyphens.
func normalizePhone(p string) string {
	p = strings.TrimSpace(p)
	p = strings.ReplaceAll(p, " ", "")
	p = strings.ReplaceAll(p, "-", "")
	return p
}

// isValidPhone applies the digit-count heuristic: 9 to 12 digits after
// dropping every non-digit rune.
func isValidPhone(p string) bool {
	digits := 0
	for _, r := range p {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= domain.MinPhoneDigits && digits <= domain.MaxPhoneDigits
}

// validateRequest collects every field problem of a submission. It performs
// no IO; the slot-taken check happens separately, right before the write.
func validateRequest(req *Request, schedule domain.WorkSchedule, now time.Time) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(req.CustomerName) == "" {
		vErr.add(msgNameRequired)
	}

	phone := normalizePhone(req.Phone)
	if phone == "" {
		vErr.add(msgPhoneRequired)
	} else if !isValidPhone(phone) {
		vErr.add(msgPhoneInvalid)
	}

	if strings.TrimSpace(req.Suburb) == "" {
		vErr.add(msgSuburbRequired)
	}

	if !req.Consent {
		vErr.add(msgConsentRequired)
	}

	if _, ok := domain.ServicePrice(req.ServiceName); !ok {
		vErr.add(msgServiceUnknown)
	}
	for _, addon := range req.Addons {
		if _, ok := domain.AddonPrice(addon); !ok {
			vErr.add(msgAddonUnknown)
			break
		}
	}
	if _, ok := domain.TravelZoneFee(req.TravelZone); !ok {
		vErr.add(msgZoneUnknown)
	}

	validateDateTime(req, schedule, now, vErr)

	return vErr.orNil()
}

// validateDateTime checks the date window, slot legality, and lead time.
func validateDateTime(req *Request, schedule domain.WorkSchedule, now time.Time, vErr *ValidationError) {
	if req.Date.IsZero() {
		vErr.add(msgDateRequired)
		return
	}
	if isDateInPast(req.Date, now) {
		vErr.add(msgDateInPast)
		return
	}
	if schedule.MaxDaysAhead > 0 {
		maxDate := midnightUTC(now).AddDate(0, 0, schedule.MaxDaysAhead)
		if midnightUTC(req.Date).After(maxDate) {
			vErr.add(msgDateTooFar)
			return
		}
	}

	if req.StartTime.IsZero() {
		vErr.add(msgTimeRequired)
		return
	}
	if !schedule.HasSlot(req.Date, req.StartTime) {
		vErr.add(msgTimeNotASlot)
		return
	}
	if schedule.MinLeadTimeMinutes > 0 && !leadTimeOK(req.Date, req.StartTime, now, schedule.MinLeadTimeMinutes) {
		vErr.add(msgTimeTooSoon)
	}
}

// leadTimeOK reports whether the slot starts at or after now plus the
// minimum lead time. An unparseable label passes the check.
func leadTimeOK(date time.Time, label types.TimeString, now time.Time, leadMinutes int) bool {
	parsed, err := time.Parse(domain.TimeFormat, label.String())
	if err != nil {
		return true
	}

	slotStart := time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location())

	return !slotStart.Before(now.Add(time.Duration(leadMinutes) * time.Minute))
}

// midnightUTC pins a moment's calendar date. Day comparisons go through it
// so they never mix the locations the two inputs were parsed in.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// isDateInPast reports whether date falls before today, comparing calendar
// days only.
func isDateInPast(date, now time.Time) bool {
	return midnightUTC(date).Before(midnightUTC(now))
}
