package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaimb/booking-service/pkg/types"
)

func TestDefaultSchedule_SlotsForWorkDay(t *testing.T) {
	schedule := DefaultSchedule()
	monday := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

	slots := schedule.SlotsForDate(monday)

	expected := []types.TimeString{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00",
	}
	assert.Equal(t, expected, slots)
}

func TestDefaultSchedule_NoSlotsOnSunday(t *testing.T) {
	schedule := DefaultSchedule()
	sunday := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)

	slots := schedule.SlotsForDate(sunday)

	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestSlotsForDate_PartialFinalSlotDropped(t *testing.T) {
	schedule := DefaultSchedule()
	schedule.DayStart = "09:00"
	schedule.DayEnd = "10:30"
	monday := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

	slots := schedule.SlotsForDate(monday)

	// 09:00-10:00 fits, 10:00-11:00 would overrun 10:30.
	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
}

func TestSlotsForDate_ShorterSlots(t *testing.T) {
	schedule := DefaultSchedule()
	schedule.DayStart = "09:00"
	schedule.DayEnd = "11:00"
	schedule.SlotMinutes = 30
	monday := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

	slots := schedule.SlotsForDate(monday)

	expected := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}
	assert.Equal(t, expected, slots)
}

func TestHasSlot(t *testing.T) {
	schedule := DefaultSchedule()
	monday := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)

	assert.True(t, schedule.HasSlot(monday, "09:00"))
	assert.True(t, schedule.HasSlot(monday, "17:00"))
	assert.False(t, schedule.HasSlot(monday, "18:00"))
	assert.False(t, schedule.HasSlot(monday, "09:30"))
	assert.False(t, schedule.HasSlot(sunday, "09:00"))
}

func TestIsWorkDay(t *testing.T) {
	schedule := DefaultSchedule()

	saturday := time.Date(2025, 10, 11, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)

	assert.True(t, schedule.IsWorkDay(saturday))
	assert.False(t, schedule.IsWorkDay(sunday))
}
