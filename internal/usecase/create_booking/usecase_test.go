package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kaimb/booking-service/internal/domain"
	bookingRepo "github.com/kaimb/booking-service/internal/infra/storage/booking"
	"github.com/kaimb/booking-service/pkg/types"
)

type mockBookingRepository struct {
	mock.Mock
}

// Create echoes the booking back with the id from Return, the way the real
// insert fills id and created_at from RETURNING.
func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	created := *booking
	created.ID = args.Get(0).(int64)
	created.CreatedAt = testNow
	return &created, nil
}

func (m *mockBookingRepository) IsSlotTaken(ctx context.Context, date time.Time, slot types.TimeString) (bool, error) {
	args := m.Called(ctx, date, slot)
	return args.Bool(0), args.Error(1)
}

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2025, 10, 6, 8, 0, 0, 0, time.UTC)

func newTestUseCase(repo BookingRepository) *UseCase {
	uc := NewUseCase(repo, domain.DefaultSchedule(), nopLogger{})
	uc.timeProvider = &stubClock{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerName: "  Sam Rider  ",
		Phone:        "04 1234-5678",
		Suburb:       "Newtown",
		Address:      "5 Example St",
		BikeType:     "Road",
		ServiceName:  "Full Service ($189)",
		Addons:       []string{"Tube install labour (+$35)", "Chain install labour (+$40)"},
		TravelZone:   "Outside area (+$20 travel fee)",
		Date:         time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		Notes:        "Rear brake squeals",
		Consent:      true,
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &mockBookingRepository{}
	repo.On("IsSlotTaken", mock.Anything, mock.Anything, types.TimeString("10:00")).
		Return(false, nil)

	var stored *domain.Booking
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.Booking)
		}).
		Return(int64(42), nil)

	uc := newTestUseCase(repo)
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "Sam Rider", stored.CustomerName, "free text is trimmed")
	assert.Equal(t, "0412345678", stored.Phone, "phone is normalized")
	assert.Equal(t, domain.StatusNew, stored.Status)
	assert.Equal(t, 189, stored.ServicePrice)
	assert.Equal(t, 75, stored.AddonsPrice)
	assert.Equal(t, 20, stored.TravelFee)
	assert.Equal(t, "Tube install labour (+$35), Chain install labour (+$40)", stored.Addons)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 284, resp.Total)
	repo.AssertExpectations(t)
}

func TestExecute_NoAddonsStoredAsNone(t *testing.T) {
	repo := &mockBookingRepository{}
	repo.On("IsSlotTaken", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	var stored *domain.Booking
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Booking) }).
		Return(int64(7), nil)

	req := validRequest()
	req.Addons = nil

	uc := newTestUseCase(repo)
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.AddonsNone, stored.Addons)
	assert.Equal(t, 0, stored.AddonsPrice)
	assert.Equal(t, 189+20, resp.Total)
}

func TestExecute_ValidationCollectsAllMessages(t *testing.T) {
	req := validRequest()
	req.CustomerName = "   "
	req.Phone = "12"
	req.Suburb = ""
	req.Consent = false

	repo := &mockBookingRepository{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{
		msgNameRequired,
		msgPhoneInvalid,
		msgSuburbRequired,
		msgConsentRequired,
	}, vErr.Messages)

	// Validation failures never reach the store.
	repo.AssertNotCalled(t, "IsSlotTaken", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_SlotTakenAtPreCheck(t *testing.T) {
	repo := &mockBookingRepository{}
	repo.On("IsSlotTaken", mock.Anything, mock.Anything, types.TimeString("10:00")).
		Return(true, nil)

	uc := newTestUseCase(repo)
	_, err := uc.Execute(context.Background(), validRequest())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{msgSlotTaken}, vErr.Messages)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_SlotClaimedConcurrently(t *testing.T) {
	// The pre-check passes but another submission wins the insert race.
	repo := &mockBookingRepository{}
	repo.On("IsSlotTaken", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrSlotTaken)

	uc := newTestUseCase(repo)
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_RepositoryFault(t *testing.T) {
	repo := &mockBookingRepository{}
	repo.On("IsSlotTaken", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	uc := newTestUseCase(repo)
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
