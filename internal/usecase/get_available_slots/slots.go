package get_available_slots

import (
	"time"

	"github.com/kaimb/booking-service/internal/domain"
	"github.com/kaimb/booking-service/pkg/types"
)

// filterAvailable keeps the slots that are neither taken nor inside the
// lead-time window, preserving chronological order.
func filterAvailable(
	slots []types.TimeString,
	taken []types.TimeString,
	date time.Time,
	now time.Time,
	leadMinutes int,
) []types.TimeString {
	takenSet := make(map[types.TimeString]struct{}, len(taken))
	for _, t := range taken {
		takenSet[t] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, ok := takenSet[slot]; ok {
			continue
		}
		if leadMinutes > 0 && !leadTimeOK(date, slot, now, leadMinutes) {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// leadTimeOK reports whether a slot starts at or after now plus the minimum
// lead time. A label that does not parse passes the check; malformed labels
// are let through rather than rejected.
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
