package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/domain"
	backendPort "nclexfront/internal/frontend/ports/backend"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodRegister = "Register"
	LogMethodLogin    = "Login"
	LogMethodLogout   = "Logout"

	ErrorFailedToRegister = "failed to register user"
	ErrorFailedToLogin    = "failed to login"
	ErrorFailedToLogout   = "failed to logout"
)

// Пути эндпоинтов аутентификации.
const (
	pathRegister = "/api/auth/register/"
	pathLogin    = "/api/auth/login/"
	pathLogout   = "/api/auth/logout/"
)

// Register регистрирует нового пользователя.
func (c *Client) Register(ctx context.Context, params backendPort.RegisterParams) (*backendPort.RegisterResult, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodRegister))

	resp, err := c.DoPublic(ctx, Request{
		Method: http.MethodPost,
		Path:   pathRegister,
		JSON:   params,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToRegister, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var result backendPort.RegisterResult
	if err := decodeJSON(resp.Body, &result); err != nil {
		log.Error(ctx, ErrorFailedToRegister, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToRegister, err)
	}

	return &result, nil
}

// Login выполняет вход пользователя.
//
// Ответ 400 с requires_2fa=true не считается ошибкой: бекенд принял пароль и
// ждет код двухфакторной аутентификации. Токены при этом не выдаются.
func (c *Client) Login(ctx context.Context, params backendPort.LoginParams) (*backendPort.LoginResult, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodLogin))

	resp, err := c.DoPublic(ctx, Request{
		Method: http.MethodPost,
		Path:   pathLogin,
		JSON:   params,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToLogin, zap.Error(err))
		return nil, err
	}

	if resp.StatusCode == http.StatusBadRequest {
		var challenge struct {
			Detail      string `json:"detail"`
			Requires2FA bool   `json:"requires_2fa"`
		}
		if json.Unmarshal(resp.Body, &challenge) == nil && challenge.Requires2FA {
			return &backendPort.LoginResult{
				Requires2FA: true,
				Message:     challenge.Detail,
			}, nil
		}
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var payload struct {
		Message      string       `json:"message"`
		Warning      string       `json:"warning"`
		AccessToken  string       `json:"access_token"`
		RefreshToken string       `json:"refresh_token"`
		User         *domain.User `json:"user"`
	}
	if err := decodeJSON(resp.Body, &payload); err != nil {
		log.Error(ctx, ErrorFailedToLogin, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToLogin, err)
	}

	return &backendPort.LoginResult{
		Message: payload.Message,
		Warning: payload.Warning,
		Pair: domain.CredentialPair{
			AccessToken:  payload.AccessToken,
			RefreshToken: payload.RefreshToken,
		},
		User: payload.User,
	}, nil
}

// Logout отзывает refresh-токен сессии на бекенде.
// Отсутствие сохраненных учетных данных не считается ошибкой.
func (c *Client) Logout(ctx context.Context, store credentials.Store) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodLogout))

	pair, err := store.Read(ctx)
	if err != nil {
		if errors.Is(err, credentials.ErrNoCredentials) {
			return nil
		}
		return err
	}

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodPost,
		Path:   pathLogout,
		JSON:   map[string]string{"refresh_token": pair.RefreshToken},
	})
	if err != nil {
		log.Warn(ctx, ErrorFailedToLogout, zap.Error(err))
		return err
	}

	if !resp.Success() {
		return Classify(resp.StatusCode, resp.Body)
	}

	return nil
}
