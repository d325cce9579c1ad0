package register

import (
	"errors"
	"net/http"

	"github.com/ElizarovAleksey/Banketam.net/internal/api/handlers"
	"github.com/ElizarovAleksey/Banketam.net/internal/service/users"
	"github.com/ElizarovAleksey/Banketam.net/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUsername    = "логин должен содержать минимум 6 латинских букв или цифр"
	msgPasswordMismatch   = "пароли не совпадают"
	msgUsernameTaken      = "этот логин уже занят"
	msgInvalidInput       = "некорректные данные регистрации"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidUsername):
			h.logger.Warn("POST /register - Invalid username: %s", req.Username)
			handlers.RespondBadRequest(w, msgInvalidUsername)

		case errors.Is(err, users.ErrPasswordMismatch):
			h.logger.Warn("POST /register - Password mismatch: username=%s", req.Username)
			handlers.RespondBadRequest(w, msgPasswordMismatch)

		case errors.Is(err, users.ErrUsernameTaken):
			h.logger.Warn("POST /register - Username taken: %s", req.Username)
			handlers.RespondConflict(w, msgUsernameTaken)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /register - Invalid input: username=%s", req.Username)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /register - Failed to register: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /register - User registered successfully: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
