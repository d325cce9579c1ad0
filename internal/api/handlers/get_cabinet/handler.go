package get_cabinet

import (
	"net/http"

	"github.com/ElizarovAleksey/Banketam.net/internal/api/handlers"
	"github.com/ElizarovAleksey/Banketam.net/internal/api/middleware"
)

const msgMissingUser = "требуется авторизация"

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

// Handle GET /api/v1/cabinet
// Заявки текущего пользователя, сначала новые
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actingUser, ok := middleware.GetActingUser(r.Context())
	if !ok {
		h.logger.Warn("GET /cabinet - Missing acting user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), actingUser.ID)
	if err != nil {
		h.logger.Error("GET /cabinet - Failed to get bookings: user_id=%d, error=%v", actingUser.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cabinet - Bookings retrieved: user_id=%d, count=%d", actingUser.ID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
