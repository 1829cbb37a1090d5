// Package dto содержит объекты передачи данных фронтенд-шлюза.
package dto

import (
	"time"

	"nclexfront/internal/frontend/domain"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// RegisterResponse содержит результат регистрации.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	TwoFactorToken string `json:"two_factor_token,omitempty"`
	BackupCode     string `json:"backup_code,omitempty"`
}

// LoginResponse содержит результат входа. При Requires2FA пользователь и
// сессия отсутствуют: требуется повторный вход с кодом 2FA.
type LoginResponse struct {
	Message     string       `json:"message,omitempty"`
	Requires2FA bool         `json:"requires_2fa,omitempty"`
	Warning     string       `json:"warning,omitempty"`
	User        *domain.User `json:"user,omitempty"`
}

// SessionResponse содержит текущего пользователя сессии.
type SessionResponse struct {
	User      *domain.User `json:"user"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

// UpdateProfileRequest содержит изменяемые поля профиля.
type UpdateProfileRequest map[string]any
