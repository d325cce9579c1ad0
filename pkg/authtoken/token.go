// Package authtoken выпускает и проверяет HS256 токены сессии.
// В токен кладем только идентификатор пользователя и признак администратора,
// остальные данные всегда читаются из БД.
package authtoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается, когда токен не прошел проверку подписи или истек
	ErrInvalidToken = errors.New("authtoken: invalid token")
)

// Claims данные сессии, зашитые в токен
type Claims struct {
	UserID  int64
	IsAdmin bool
}

// Manager выпускает и проверяет токены с общим секретом
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager создает менеджер токенов. ttl задает время жизни сессии.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue подписывает токен для пользователя
func (m *Manager) Issue(userID int64, isAdmin bool) (string, error) {
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"sub": fmt.Sprintf("%d", userID),
		"adm": isAdmin,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("authtoken: failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse проверяет подпись и срок действия токена и возвращает claims сессии
func (m *Manager) Parse(raw string) (*Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, ErrInvalidToken
	}

	var userID int64
	if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil || userID <= 0 {
		return nil, ErrInvalidToken
	}

	isAdmin, _ := mapClaims["adm"].(bool)

	return &Claims{UserID: userID, IsAdmin: isAdmin}, nil
}
