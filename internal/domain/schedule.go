package domain

import (
	"time"

	"github.com/kaimb/booking-service/pkg/types"
)

// WorkSchedule holds the work-day parameters slots are generated from.
// Process-wide and read-only after startup.
type WorkSchedule struct {
	WorkDays           map[time.Weekday]bool
	DayStart           types.TimeString
	DayEnd             types.TimeString
	SlotMinutes        int
	MaxDaysAhead       int
	MinLeadTimeMinutes int
}

// DefaultSchedule is the operator's current schedule: Mon-Sat, 09:00-18:00,
// hourly slots, bookable up to 30 days out with a one hour lead time.
func DefaultSchedule() WorkSchedule {
	return WorkSchedule{
		WorkDays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
			time.Saturday:  true,
		},
		DayStart:           "09:00",
		DayEnd:             "18:00",
		SlotMinutes:        60,
		MaxDaysAhead:       30,
		MinLeadTimeMinutes: 60,
	}
}

// IsWorkDay reports whether date falls on a bookable weekday.
func (s WorkSchedule) IsWorkDay(date time.Time) bool {
	return s.WorkDays[date.Weekday()]
}

// SlotsForDate generates the ordered slot labels for a calendar date:
// every SlotMinutes from DayStart while the slot's end stays within DayEnd.
// A final partial slot is dropped. Non-work days yield no slots. The list is
// recomputed on every call so it always reflects the current schedule.
func (s WorkSchedule) SlotsForDate(date time.Time) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if !s.IsWorkDay(date) {
		return slots
	}

	current := s.DayStart
	for current.IsBefore(s.DayEnd) {
		slotEnd, err := current.AddMinutes(s.SlotMinutes)
		if err != nil || slotEnd.IsAfter(s.DayEnd) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots
}

// HasSlot reports whether label is one of the slots generated for date.
func (s WorkSchedule) HasSlot(date time.Time, label types.TimeString) bool {
	for _, slot := range s.SlotsForDate(date) {
		if slot == label {
			return true
		}
	}
	return false
}
