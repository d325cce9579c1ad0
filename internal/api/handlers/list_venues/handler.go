package list_venues

import (
	"net/http"

	"github.com/ElizarovAleksey/Banketam.net/internal/api/handlers"
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

// Handle GET /api/v1/venues
// Список помещений для формы создания заявки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.GetVenues(r.Context())
	if err != nil {
		h.logger.Error("GET /venues - Failed to get venues: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues - Venues retrieved: count=%d", len(venues))
	handlers.RespondJSON(w, http.StatusOK, venues)
}
