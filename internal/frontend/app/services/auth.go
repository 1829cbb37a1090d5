// Package services содержит реализации сервисов фронтенд-шлюза.
package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/app/session"
	backendPort "nclexfront/internal/frontend/ports/backend"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogUserRegistered  = "user registered"
	LogUserLoggedIn    = "user logged in"
	LogLoginNeeds2FA   = "login requires two-factor code"
	LogUserLoggedOut   = "user logged out"
	LogProfileUpdated  = "profile updated"
	LogSessionResolved = "session resolved"

	ErrorFailedToRegister      = "failed to register user"
	ErrorFailedToLogin         = "failed to login"
	ErrorFailedToSaveTokens    = "failed to save session tokens"
	ErrorFailedToRevokeTokens  = "failed to revoke tokens on backend"
	ErrorFailedToClearTokens   = "failed to clear session tokens"
	ErrorFailedToUpdateProfile = "failed to update profile"
)

// AuthServiceImpl реализует services.AuthService поверх клиента бекенда.
type AuthServiceImpl struct {
	auth     backendPort.AuthAPI
	users    backendPort.UsersAPI
	sessions *session.Manager
}

// NewAuthService создает новый экземпляр AuthServiceImpl.
func NewAuthService(auth backendPort.AuthAPI, users backendPort.UsersAPI, sessions *session.Manager) *AuthServiceImpl {
	return &AuthServiceImpl{auth: auth, users: users, sessions: sessions}
}

// Register выполняет регистрацию пользователя.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	log := logger.Log(ctx)

	result, err := s.auth.Register(ctx, backendPort.RegisterParams{
		Email:           req.Email,
		FullName:        req.FullName,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		log.Debug(ctx, ErrorFailedToRegister, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToRegister, err)
	}

	log.Info(ctx, LogUserRegistered, zap.String("email", req.Email))

	return &dto.RegisterResponse{Message: result.Message, User: result.User}, nil
}

// Login выполняет вход пользователя. Успешный вход сохраняет пару токенов в
// хранилище сессии и кладет пользователя в кэш; ответ requires_2fa ничего
// не сохраняет.
func (s *AuthServiceImpl) Login(ctx context.Context, sessionID string, store credentials.Store, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	log := logger.Log(ctx)

	result, err := s.auth.Login(ctx, backendPort.LoginParams{
		Email:          req.Email,
		Password:       req.Password,
		TwoFactorToken: req.TwoFactorToken,
		BackupCode:     req.BackupCode,
	})
	if err != nil {
		log.Debug(ctx, ErrorFailedToLogin, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToLogin, err)
	}

	if result.Requires2FA {
		log.Info(ctx, LogLoginNeeds2FA, zap.String("email", req.Email))
		return &dto.LoginResponse{Requires2FA: true, Message: result.Message}, nil
	}

	if err := store.Save(ctx, result.Pair); err != nil {
		log.Error(ctx, ErrorFailedToSaveTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToSaveTokens, err)
	}

	if result.User != nil {
		s.sessions.Store(ctx, sessionID, result.User)
	}

	log.Info(ctx, LogUserLoggedIn, zap.String("email", req.Email))

	return &dto.LoginResponse{
		Message: result.Message,
		Warning: result.Warning,
		User:    result.User,
	}, nil
}

// Logout выполняет выход: отзыв токенов на бекенде best-effort, локальные
// учетные данные и кэш пользователя очищаются в любом случае.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string, store credentials.Store) error {
	log := logger.Log(ctx)

	if err := s.auth.Logout(ctx, store); err != nil {
		log.Warn(ctx, ErrorFailedToRevokeTokens, zap.Error(err))
	}

	s.sessions.Invalidate(ctx, sessionID)

	if err := store.Clear(ctx); err != nil {
		log.Error(ctx, ErrorFailedToClearTokens, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToClearTokens, err)
	}

	log.Info(ctx, LogUserLoggedOut)

	return nil
}

// Session возвращает текущего пользователя сессии.
func (s *AuthServiceImpl) Session(ctx context.Context, sessionID string, store credentials.Store) (*dto.SessionResponse, error) {
	user, err := s.sessions.Current(ctx, sessionID, store)
	if err != nil {
		return nil, err
	}

	logger.Log(ctx).Debug(ctx, LogSessionResolved, zap.String("user_id", user.ID))

	return &dto.SessionResponse{
		User:      user,
		ExpiresAt: s.sessions.TokenExpiry(ctx, store),
	}, nil
}

// UpdateProfile обновляет профиль пользователя и освежает кэш сессии.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, sessionID string, store credentials.Store, req dto.UpdateProfileRequest) (*dto.SessionResponse, error) {
	log := logger.Log(ctx)

	user, err := s.users.UpdateProfile(ctx, store, req)
	if err != nil {
		log.Debug(ctx, ErrorFailedToUpdateProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToUpdateProfile, err)
	}

	s.sessions.Store(ctx, sessionID, user)
	log.Info(ctx, LogProfileUpdated, zap.String("user_id", user.ID))

	return &dto.SessionResponse{
		User:      user,
		ExpiresAt: s.sessions.TokenExpiry(ctx, store),
	}, nil
}
