package create_booking

import (
	"errors"
	"net/http"

	"github.com/ElizarovAleksey/Banketam.net/internal/api/handlers"
	"github.com/ElizarovAleksey/Banketam.net/internal/api/middleware"
	"github.com/ElizarovAleksey/Banketam.net/internal/service/bookings"
	"github.com/ElizarovAleksey/Banketam.net/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "требуется авторизация"
	msgInvalidStartDate   = "некорректная дата начала, ожидается DD.MM.YYYY или дата-время"
	msgInvalidPayment     = "некорректный способ оплаты"
	msgVenueNotFound      = "помещение не найдено"
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actingUser, ok := middleware.GetActingUser(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing acting user")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), actingUser.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStartDate):
			h.logger.Warn("POST /bookings - Invalid start date: user_id=%d, value=%q", actingUser.ID, req.StartDate)
			handlers.RespondBadRequest(w, msgInvalidStartDate)

		case errors.Is(err, bookings.ErrInvalidPaymentMethod):
			h.logger.Warn("POST /bookings - Invalid payment method: user_id=%d, value=%q", actingUser.ID, req.PaymentMethod)
			handlers.RespondBadRequest(w, msgInvalidPayment)

		case errors.Is(err, bookings.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", actingUser.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d",
		result.ID, actingUser.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
