package admin_bookings

import (
	"errors"
	"net/http"

	"github.com/ElizarovAleksey/Banketam.net/internal/api/handlers"
	"github.com/ElizarovAleksey/Banketam.net/internal/api/middleware"
	"github.com/ElizarovAleksey/Banketam.net/internal/service/bookings"
	"github.com/ElizarovAleksey/Banketam.net/internal/service/bookings/models"
)

const (
	msgMissingUser = "требуется авторизация"
	msgForbidden   = "доступ запрещен"
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

// Handle GET /api/v1/admin/bookings
// Query params: status, venue, order, page (все опциональны; некорректные
// значения молча заменяются значениями по умолчанию)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actingUser, ok := middleware.GetActingUser(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/bookings - Missing acting user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	q := r.URL.Query()
	query := &models.AdminListQuery{
		Status: q.Get("status"),
		Venue:  q.Get("venue"),
		Order:  q.Get("order"),
		Page:   q.Get("page"),
	}

	result, err := h.service.GetAdminBookings(r.Context(), actingUser, query)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /admin/bookings - Access denied: user_id=%d", actingUser.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/bookings - Failed to get bookings: user_id=%d, error=%v",
				actingUser.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved: user_id=%d, page=%d, count=%d",
		actingUser.ID, result.Meta.Page, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
