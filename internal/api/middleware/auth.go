package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ElizarovAleksey/Banketam.net/internal/api/handlers"
	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
	"github.com/ElizarovAleksey/Banketam.net/pkg/authtoken"
)

type contextKey string

// actingUserKey ключ контекста с аутентифицированным пользователем
const actingUserKey contextKey = "actingUser"

const msgUnauthorized = "требуется авторизация"

// TokenParser интерфейс проверки сессионных токенов
type TokenParser interface {
	Parse(raw string) (*authtoken.Claims, error)
}

// UserProvider интерфейс загрузки пользователя по ID
// Роль пользователя всегда читается из БД, а не из токена
type UserProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Auth возвращает middleware, проверяющий Bearer токен и кладущий
// аутентифицированного пользователя в контекст запроса
func Auth(tokens TokenParser, users UserProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), actingUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetActingUser достает аутентифицированного пользователя из контекста
func GetActingUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(actingUserKey).(*domain.User)
	return user, ok
}
