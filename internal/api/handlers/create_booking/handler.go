package create_booking

import (
	"errors"
	"net/http"

	"github.com/kaimb/booking-service/internal/api/handlers"
	createBooking "github.com/kaimb/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid booking date or time, expected YYYY-MM-DD and HH:MM"
	msgSlotTaken          = "That time just got booked. Pick another slot."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var vErr *createBooking.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /bookings - Validation failed: %d problem(s)", len(vErr.Messages))
			handlers.RespondValidationErrors(w, vErr.Messages)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, time=%s", req.BookingDate, req.BookingTime)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, date=%s, time=%s",
		result.ID, req.BookingDate, req.BookingTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
