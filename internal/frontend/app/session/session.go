// Package session содержит явный контекст сессии: кэш пользователя,
// загружаемого через профильный эндпоинт бекенда.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/domain"
	backendPort "nclexfront/internal/frontend/ports/backend"
	"nclexfront/internal/frontend/ports/cache"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogUserLoaded      = "session user loaded from backend"
	LogUserCached      = "session user served from cache"
	LogUserInvalidated = "session user cache invalidated"

	ErrorFailedToLoadUser  = "failed to load session user"
	ErrorFailedToCacheUser = "failed to cache session user"
)

// userKeyPrefix - префикс ключей кэша пользователей сессий.
const userKeyPrefix = "session:user:"

// Manager загружает и кэширует пользователя браузерной сессии.
// Конструируется один раз при старте приложения и внедряется во все
// потребители; глобального состояния нет.
type Manager struct {
	users backendPort.UsersAPI
	cache cache.Cache
	ttl   time.Duration
}

// NewManager создает новый экземпляр Manager.
func NewManager(users backendPort.UsersAPI, c cache.Cache, ttl time.Duration) *Manager {
	return &Manager{users: users, cache: c, ttl: ttl}
}

// Current возвращает пользователя сессии, при необходимости загружая профиль
// через шлюз. Неудачная загрузка профиля трактуется как "не аутентифицирован":
// учетные данные сессии очищаются, ошибка уходит вызывающему.
func (m *Manager) Current(ctx context.Context, sessionID string, store credentials.Store) (*domain.User, error) {
	log := logger.Log(ctx)

	if cached, err := m.cache.Get(ctx, userKeyPrefix+sessionID); err == nil && cached != "" {
		var user domain.User
		if json.Unmarshal([]byte(cached), &user) == nil {
			log.Debug(ctx, LogUserCached)
			return &user, nil
		}
	}

	user, err := m.users.Profile(ctx, store)
	if err != nil {
		log.Debug(ctx, ErrorFailedToLoadUser, zap.Error(err))
		if !errors.Is(err, domain.ErrAuthenticationExpired) {
			if clearErr := store.Clear(ctx); clearErr != nil {
				log.Error(ctx, ErrorFailedToLoadUser, zap.Error(clearErr))
			}
		}
		return nil, err
	}

	m.Store(ctx, sessionID, user)
	log.Debug(ctx, LogUserLoaded, zap.String("user_id", user.ID))

	return user, nil
}

// Store кладет пользователя в кэш сессии (например, сразу после входа).
func (m *Manager) Store(ctx context.Context, sessionID string, user *domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToCacheUser, zap.Error(err))
		return
	}
	if err := m.cache.Set(ctx, userKeyPrefix+sessionID, string(raw), m.ttl); err != nil {
		logger.Log(ctx).Warn(ctx, ErrorFailedToCacheUser, zap.Error(err))
	}
}

// Invalidate удаляет пользователя из кэша сессии.
func (m *Manager) Invalidate(ctx context.Context, sessionID string) {
	if err := m.cache.Delete(ctx, userKeyPrefix+sessionID); err != nil {
		logger.Log(ctx).Warn(ctx, LogUserInvalidated, zap.Error(err))
		return
	}
	logger.Log(ctx).Debug(ctx, LogUserInvalidated)
}
