// Package services определяет интерфейсы сервисов фронтенд-шлюза.
package services

import (
	"context"

	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/ports/credentials"
)

// AuthService определяет операции аутентификации и сессии.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)

	// Login выполняет вход от имени сессии. Успех сохраняет пару токенов
	// в хранилище сессии; ответ requires_2fa токены не сохраняет.
	Login(ctx context.Context, sessionID string, store credentials.Store, req *dto.LoginRequest) (*dto.LoginResponse, error)

	// Logout отзывает токены на бекенде по возможности и всегда очищает
	// локальные учетные данные и кэш пользователя.
	Logout(ctx context.Context, sessionID string, store credentials.Store) error

	// Session возвращает текущего пользователя сессии или ошибку
	// KindAuthExpired, если сессия не аутентифицирована.
	Session(ctx context.Context, sessionID string, store credentials.Store) (*dto.SessionResponse, error)

	UpdateProfile(ctx context.Context, sessionID string, store credentials.Store, req dto.UpdateProfileRequest) (*dto.SessionResponse, error)
}
