package get_catalog

import (
	"net/http"

	"github.com/kaimb/booking-service/internal/api/handlers"
	"github.com/kaimb/booking-service/internal/domain"
)

type Handler struct {
	schedule domain.WorkSchedule
	logger   Logger
}

func NewHandler(schedule domain.WorkSchedule, logger Logger) *Handler {
	return &Handler{
		schedule: schedule,
		logger:   logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, BuildCatalogResponse(h.schedule))
}
