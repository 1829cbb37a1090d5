package backend

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodProfile       = "Profile"
	LogMethodUpdateProfile = "UpdateProfile"

	ErrorFailedToGetProfile    = "failed to get user profile"
	ErrorFailedToUpdateProfile = "failed to update user profile"
)

// Пути эндпоинтов профиля.
const (
	pathProfile       = "/api/users/me/"
	pathUpdateProfile = "/api/me/update/"
)

// Profile получает профиль текущего пользователя.
func (c *Client) Profile(ctx context.Context, store credentials.Store) (*domain.User, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodProfile))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodGet,
		Path:   pathProfile,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToGetProfile, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var user domain.User
	if err := decodeJSON(resp.Body, &user); err != nil {
		log.Error(ctx, ErrorFailedToGetProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGetProfile, err)
	}

	return &user, nil
}

// UpdateProfile обновляет поля профиля текущего пользователя.
func (c *Client) UpdateProfile(ctx context.Context, store credentials.Store, fields map[string]any) (*domain.User, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodUpdateProfile))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodPut,
		Path:   pathUpdateProfile,
		JSON:   fields,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToUpdateProfile, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var user domain.User
	if err := decodeJSON(resp.Body, &user); err != nil {
		log.Error(ctx, ErrorFailedToUpdateProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToUpdateProfile, err)
	}

	return &user, nil
}
