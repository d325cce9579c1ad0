package add_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ElizarovAleksey/Banketam.net/internal/api/handlers"
	"github.com/ElizarovAleksey/Banketam.net/internal/api/middleware"
	addReview "github.com/ElizarovAleksey/Banketam.net/internal/usecase/add_review"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "требуется авторизация"
	msgInvalidBookingID   = "некорректный ID заявки"
	msgBookingNotFound    = "заявка не найдена"
	msgForbidden          = "доступ запрещен"
	msgNotCompleted       = "отзыв можно оставить только после завершения банкета"
	msgAlreadyReviewed    = "отзыв на эту заявку уже оставлен"
	msgInvalidReview      = "некорректные данные отзыва"
)

type Handler struct {
	useCase AddReviewUseCase
	logger  Logger
}

func NewHandler(useCase AddReviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleForm GET /api/v1/bookings/{bookingId}/review
// Данные для формы отзыва: состояние заявки и возможность оставить отзыв
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	actingUser, ok := middleware.GetActingUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/review - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	form, err := h.useCase.GetForm(r.Context(), bookingID, actingUser.ID)
	if err != nil {
		switch {
		case errors.Is(err, addReview.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, addReview.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/review - Access denied: user_id=%d, booking_id=%d",
				actingUser.ID, bookingID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id}/review - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseFormResponse(form))
}

// Handle POST /api/v1/bookings/{bookingId}/review
// Исходная версия при нарушении предусловий молча уводила пользователя в
// кабинет; здесь нарушение предусловия - явный 409 с сообщением
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actingUser, ok := middleware.GetActingUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/review - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AddReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &addReview.Request{
		BookingID: bookingID,
		UserID:    actingUser.ID,
		Rating:    req.Rating,
		Text:      req.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, addReview.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/review - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, addReview.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/review - Access denied: user_id=%d, booking_id=%d",
				actingUser.ID, bookingID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, addReview.ErrBookingNotCompleted):
			h.logger.Warn("POST /bookings/{id}/review - Booking not completed: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotCompleted)

		case errors.Is(err, addReview.ErrAlreadyReviewed):
			h.logger.Warn("POST /bookings/{id}/review - Already reviewed: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		case errors.Is(err, addReview.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/review - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidReview)

		default:
			h.logger.Error("POST /bookings/{id}/review - Failed to add review: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/review - Review created: review_id=%d, booking_id=%d",
		result.ID, bookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
