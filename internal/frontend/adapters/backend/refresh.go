package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogRefreshStarted   = "refreshing token pair"
	LogRefreshShared    = "joining in-flight token refresh"
	LogRefreshSucceeded = "token pair refreshed"

	ErrorRefreshFailed = "token refresh failed"
	ErrorClearFailed   = "failed to clear credentials after refresh failure"
)

// refreshCall - одно выполняющееся обновление токенов, к результату которого
// присоединяются конкурентные вызовы.
type refreshCall struct {
	done  chan struct{}
	token string
	err   error
}

// refreshGroup схлопывает конкурентные обновления одной и той же пары токенов
// в один сетевой вызов. Ключ - сам refresh-токен: два запроса одной сессии
// видят одно значение, разные сессии не пересекаются.
type refreshGroup struct {
	mu       sync.Mutex
	inflight map[string]*refreshCall
}

func newRefreshGroup() *refreshGroup {
	return &refreshGroup{inflight: make(map[string]*refreshCall)}
}

// refresh обменивает сохраненный refresh-токен на новую пару.
//
// Без сохраненного refresh-токена сетевой вызов не выполняется - сразу
// терминальная ошибка. Ровно одна попытка: на любой не-2xx ответ или сетевой
// сбой учетные данные очищаются и возвращается ErrAuthenticationExpired.
func (g *refreshGroup) refresh(ctx context.Context, c *Client, store credentials.Store) (string, error) {
	log := logger.Log(ctx)

	pair, err := store.Read(ctx)
	if err != nil {
		if errors.Is(err, credentials.ErrNoCredentials) {
			return "", domain.ErrAuthenticationExpired
		}
		return "", err
	}
	if pair.RefreshToken == "" {
		// Access-токен без refresh-токена бесполезен, держать его незачем.
		c.clearAfterRefreshFailure(ctx, store)
		return "", domain.ErrAuthenticationExpired
	}

	g.mu.Lock()
	if call, ok := g.inflight[pair.RefreshToken]; ok {
		g.mu.Unlock()
		log.Debug(ctx, LogRefreshShared)
		select {
		case <-call.done:
			return call.token, call.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	call := &refreshCall{done: make(chan struct{})}
	g.inflight[pair.RefreshToken] = call
	g.mu.Unlock()

	log.Debug(ctx, LogRefreshStarted)
	call.token, call.err = c.exchangeRefreshToken(ctx, store, pair.RefreshToken)

	g.mu.Lock()
	delete(g.inflight, pair.RefreshToken)
	g.mu.Unlock()
	close(call.done)

	return call.token, call.err
}

// exchangeRefreshToken выполняет единственную попытку обмена refresh-токена.
func (c *Client) exchangeRefreshToken(ctx context.Context, store credentials.Store, refreshToken string) (string, error) {
	log := logger.Log(ctx)

	// Поле JSON заполняется, чтобы buildRequest выставил Content-Type:
	// бекенд не разбирает тело без application/json.
	payload := map[string]string{"refresh_token": refreshToken}
	resp, err := c.send(ctx, Request{
		Method: http.MethodPost,
		Path:   "/api/auth/refresh/",
		JSON:   payload,
	}, mustJSON(payload), "")
	if err != nil {
		log.Error(ctx, ErrorRefreshFailed, zap.Error(err))
		c.clearAfterRefreshFailure(ctx, store)
		return "", domain.ErrAuthenticationExpired
	}

	if !resp.Success() {
		log.Warn(ctx, ErrorRefreshFailed, zap.Int("status", resp.StatusCode))
		c.clearAfterRefreshFailure(ctx, store)
		return "", domain.ErrAuthenticationExpired
	}

	var pair domain.CredentialPair
	if err := decodeJSON(resp.Body, &pair); err != nil || pair.AccessToken == "" {
		log.Error(ctx, ErrorRefreshFailed, zap.Error(err))
		c.clearAfterRefreshFailure(ctx, store)
		return "", domain.ErrAuthenticationExpired
	}

	// Полная замена: бекенд ротирует оба токена.
	if err := store.Save(ctx, pair); err != nil {
		return "", err
	}

	log.Debug(ctx, LogRefreshSucceeded)
	return pair.AccessToken, nil
}

func (c *Client) clearAfterRefreshFailure(ctx context.Context, store credentials.Store) {
	if err := store.Clear(ctx); err != nil {
		logger.Log(ctx).Error(ctx, ErrorClearFailed, zap.Error(err))
	}
}

// mustJSON сериализует значение, которое по построению сериализуемо.
func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
