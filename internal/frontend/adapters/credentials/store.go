// Package credentials содержит реализацию хранилища учетных данных поверх кэша.
package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/cache"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodSave  = "save credentials"
	LogMethodRead  = "read credentials"
	LogMethodClear = "clear credentials"

	ErrorFailedToSave  = "failed to save credentials"
	ErrorFailedToRead  = "failed to read credentials"
	ErrorFailedToClear = "failed to clear credentials"
)

// keyPrefix - префикс ключей хранилища учетных данных.
const keyPrefix = "credentials:"

// CacheProvider выдает хранилища учетных данных, живущие в кэше.
// Одна браузерная сессия получает один ключ; пара токенов хранится как JSON
// и живет столько же, сколько сама сессия.
type CacheProvider struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewCacheProvider создает новый экземпляр CacheProvider.
func NewCacheProvider(c cache.Cache, ttl time.Duration) *CacheProvider {
	return &CacheProvider{cache: c, ttl: ttl}
}

// ForSession возвращает хранилище, привязанное к сессии.
func (p *CacheProvider) ForSession(sessionID string) credentials.Store {
	return &cacheStore{
		cache: p.cache,
		key:   keyPrefix + sessionID,
		ttl:   p.ttl,
	}
}

// cacheStore реализует интерфейс Store для одной сессии.
type cacheStore struct {
	cache cache.Cache
	key   string
	ttl   time.Duration
}

// Save сохраняет пару токенов, полностью заменяя предыдущую.
func (s *cacheStore) Save(ctx context.Context, pair domain.CredentialPair) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSave))

	raw, err := json.Marshal(pair)
	if err != nil {
		log.Error(ctx, ErrorFailedToSave, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSave, err)
	}

	if err := s.cache.Set(ctx, s.key, string(raw), s.ttl); err != nil {
		log.Error(ctx, ErrorFailedToSave, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSave, err)
	}

	return nil
}

// Read возвращает сохраненную пару или ErrNoCredentials.
func (s *cacheStore) Read(ctx context.Context) (domain.CredentialPair, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodRead))

	raw, err := s.cache.Get(ctx, s.key)
	if err != nil {
		log.Error(ctx, ErrorFailedToRead, zap.Error(err))
		return domain.CredentialPair{}, fmt.Errorf("%s: %w", ErrorFailedToRead, err)
	}
	if raw == "" {
		return domain.CredentialPair{}, credentials.ErrNoCredentials
	}

	var pair domain.CredentialPair
	if err := json.Unmarshal([]byte(raw), &pair); err != nil {
		// Испорченная запись равносильна отсутствию учетных данных.
		log.Warn(ctx, ErrorFailedToRead, zap.Error(err))
		return domain.CredentialPair{}, credentials.ErrNoCredentials
	}
	if pair.Empty() {
		return domain.CredentialPair{}, credentials.ErrNoCredentials
	}

	return pair, nil
}

// Clear удаляет пару токенов.
func (s *cacheStore) Clear(ctx context.Context) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodClear))

	if err := s.cache.Delete(ctx, s.key); err != nil {
		log.Error(ctx, ErrorFailedToClear, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToClear, err)
	}

	return nil
}
