package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createBooking "github.com/kaimb/booking-service/internal/usecase/create_booking"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func postBooking(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{
	"customerName": "Sam Rider",
	"phone": "04 1234-5678",
	"suburb": "Newtown",
	"bikeType": "Road",
	"serviceName": "Full Service ($189)",
	"travelZone": "Outside area (+$20 travel fee)",
	"bookingDate": "2025-10-07",
	"bookingTime": "10:00",
	"consent": true
}`

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.AnythingOfType("*create_booking.Request")).
		Return(&createBooking.Response{
			ID:           42,
			CreatedAt:    time.Date(2025, 10, 6, 8, 0, 0, 0, time.UTC),
			CustomerName: "Sam Rider",
			Phone:        "0412345678",
			Suburb:       "Newtown",
			BikeType:     "Road",
			ServiceName:  "Full Service ($189)",
			ServicePrice: 189,
			Addons:       "None",
			TravelZone:   "Outside area (+$20 travel fee)",
			TravelFee:    20,
			BookingDate:  time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC),
			BookingTime:  "10:00",
			Status:       "new",
			Total:        209,
		}, nil)

	h := NewHandler(uc, nopLogger{})
	rec := postBooking(t, h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "new", resp.Status)
	assert.Equal(t, "2025-10-07", resp.BookingDate)
	assert.Equal(t, "10:00", resp.BookingTime)
	assert.Equal(t, 209, resp.Total)
	uc.AssertExpectations(t)
}

func TestHandle_ParsedRequestReachesUseCase(t *testing.T) {
	var captured *createBooking.Request

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.AnythingOfType("*create_booking.Request")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*createBooking.Request)
		}).
		Return(&createBooking.Response{}, nil)

	h := NewHandler(uc, nopLogger{})
	postBooking(t, h, validBody)

	require.NotNil(t, captured)
	assert.Equal(t, "Sam Rider", captured.CustomerName)
	assert.Equal(t, time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC), captured.Date)
	assert.Equal(t, "10:00", captured.StartTime.String())
	assert.True(t, captured.Consent)
}

func TestHandle_InvalidJSON(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, `{"customerName": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, `{"customerName": "Sam", "surprise": true}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_BadDateOrTime(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, `{"bookingDate": "07/10/2025", "bookingTime": "10:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postBooking(t, h, `{"bookingDate": "2025-10-07", "bookingTime": "10am"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_ValidationErrorsListed(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, &createBooking.ValidationError{Messages: []string{
			"Name is required.",
			"Phone is required.",
		}})

	h := NewHandler(uc, nopLogger{})
	rec := postBooking(t, h, validBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Name is required.", "Phone is required."}, body.Errors)
}

func TestHandle_SlotTakenConflict(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrSlotTaken)

	h := NewHandler(uc, nopLogger{})
	rec := postBooking(t, h, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pick another slot")
}

func TestHandle_InternalError(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrInternal)

	h := NewHandler(uc, nopLogger{})
	rec := postBooking(t, h, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
