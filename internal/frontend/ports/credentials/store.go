// Package credentials определяет интерфейс хранилища учетных данных.
package credentials

import (
	"context"
	"errors"

	"nclexfront/internal/frontend/domain"
)

// ErrNoCredentials возвращается, когда для сессии не сохранено ни одного токена.
var ErrNoCredentials = errors.New("no stored credentials")

// Store хранит пару токенов одной браузерной сессии.
// Пара сохраняется и заменяется только целиком; частичных обновлений нет.
type Store interface {
	// Save сохраняет пару токенов, полностью заменяя предыдущую.
	Save(ctx context.Context, pair domain.CredentialPair) error

	// Read возвращает сохраненную пару или ErrNoCredentials.
	Read(ctx context.Context) (domain.CredentialPair, error)

	// Clear удаляет пару токенов. Отсутствие пары не считается ошибкой.
	Clear(ctx context.Context) error
}

// Provider выдает хранилище, привязанное к конкретной сессии.
type Provider interface {
	ForSession(sessionID string) Store
}
