package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_Total(t *testing.T) {
	b := &Booking{
		ServicePrice: 189,
		AddonsPrice:  75,
		TravelFee:    20,
	}

	assert.Equal(t, 284, b.Total())
}

func TestBooking_Total_NoExtras(t *testing.T) {
	b := &Booking{ServicePrice: 99}

	assert.Equal(t, 99, b.Total())
}

func TestParseStatus(t *testing.T) {
	for _, s := range AllStatuses {
		parsed, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("archived")
	assert.Error(t, err)

	_, err = ParseStatus("New")
	assert.Error(t, err, "status values are case sensitive")

	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestBooking_IsCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusCancelled}).IsCancelled())
	assert.False(t, (&Booking{Status: StatusNew}).IsCancelled())
	assert.False(t, (&Booking{Status: StatusDone}).IsCancelled())
}

func TestCatalogLookups(t *testing.T) {
	price, ok := ServicePrice("Full Service ($189)")
	require.True(t, ok)
	assert.Equal(t, 189, price)

	fee, ok := TravelZoneFee("Included area (no travel fee)")
	require.True(t, ok)
	assert.Equal(t, 0, fee)

	price, ok = AddonPrice("Deep drivetrain clean (+$60)")
	require.True(t, ok)
	assert.Equal(t, 60, price)

	_, ok = ServicePrice("Full Service")
	assert.False(t, ok, "lookup matches the full label, price included")

	_, ok = AddonPrice("")
	assert.False(t, ok)
}
