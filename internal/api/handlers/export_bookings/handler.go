package export_bookings

import (
	"bytes"
	"net/http"

	"github.com/kaimb/booking-service/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/export
// The export is buffered so a storage fault mid-export still yields a clean
// 500 instead of a truncated download.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.ExportCSV(r.Context(), &buf); err != nil {
		h.logger.Error("GET /admin/bookings/export - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	size := buf.Len()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)

	h.logger.Info("GET /admin/bookings/export - Export served (%d bytes)", size)
}
