package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nclexfront/internal/frontend/ports/credentials"
)

// TokenExpiry извлекает момент истечения access-токена сессии из его claims.
// Подпись не проверяется: токен выдает и валидирует бекенд, фронтенду
// значение нужно только для отображения. Возвращает nil, если токена нет
// или claims не читаются.
func (m *Manager) TokenExpiry(ctx context.Context, store credentials.Store) *time.Time {
	pair, err := store.Read(ctx)
	if err != nil || pair.AccessToken == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(pair.AccessToken, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	expiresAt := exp.Time
	return &expiresAt
}
