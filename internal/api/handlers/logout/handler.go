package logout

import "net/http"

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/logout
// Сессия живет в токене, серверного состояния нет: клиент просто
// выбрасывает токен. Маршрут существует для симметрии с login.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("POST /logout - Session closed")
	w.WriteHeader(http.StatusNoContent)
}
