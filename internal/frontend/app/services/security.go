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
	LogTwoFactorEnabled      = "two-factor setup started"
	LogTwoFactorConfirmed    = "two-factor enabled"
	LogTwoFactorDisabled     = "two-factor disabled"
	LogBackupCodesIssued     = "backup codes issued"
	LogPasswordChanged       = "password changed, session ended"
	LogPasswordResetRequest  = "password reset requested"
	LogPasswordResetComplete = "password reset completed"

	ErrorFailedTwoFactor      = "two-factor operation failed"
	ErrorFailedPasswordChange = "failed to change password"
	ErrorFailedPasswordReset  = "failed to reset password"
)

// SecurityServiceImpl реализует services.SecurityService поверх клиента бекенда.
type SecurityServiceImpl struct {
	security backendPort.SecurityAPI
	sessions *session.Manager
}

// NewSecurityService создает новый экземпляр SecurityServiceImpl.
func NewSecurityService(security backendPort.SecurityAPI, sessions *session.Manager) *SecurityServiceImpl {
	return &SecurityServiceImpl{security: security, sessions: sessions}
}

// TwoFactorStatus возвращает состояние 2FA текущего пользователя.
func (s *SecurityServiceImpl) TwoFactorStatus(ctx context.Context, store credentials.Store) (*dto.TwoFactorStatusResponse, error) {
	status, err := s.security.TwoFactorStatus(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedTwoFactor, err)
	}

	return &dto.TwoFactorStatusResponse{
		Enabled:          status.Enabled,
		BackupCodesCount: status.BackupCodesCount,
	}, nil
}

// EnableTwoFactor начинает настройку 2FA.
func (s *SecurityServiceImpl) EnableTwoFactor(ctx context.Context, store credentials.Store) (*dto.TwoFactorSetupResponse, error) {
	setup, err := s.security.EnableTwoFactor(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedTwoFactor, err)
	}

	logger.Log(ctx).Info(ctx, LogTwoFactorEnabled)

	return &dto.TwoFactorSetupResponse{
		Secret:         setup.Secret,
		QRCode:         setup.QRCode,
		ManualEntryKey: setup.ManualEntryKey,
		Issuer:         setup.Issuer,
		AccountName:    setup.AccountName,
		Message:        setup.Message,
	}, nil
}

// ConfirmTwoFactor завершает настройку 2FA кодом из аутентификатора.
func (s *SecurityServiceImpl) ConfirmTwoFactor(ctx context.Context, store credentials.Store, req *dto.TwoFactorConfirmRequest) (*dto.MessageResponse, error) {
	message, err := s.security.ConfirmTwoFactor(ctx, store, req.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedTwoFactor, err)
	}

	logger.Log(ctx).Info(ctx, LogTwoFactorConfirmed)

	return &dto.MessageResponse{Message: message}, nil
}

// DisableTwoFactor выключает 2FA по паролю и действующему коду.
func (s *SecurityServiceImpl) DisableTwoFactor(ctx context.Context, store credentials.Store, req *dto.TwoFactorDisableRequest) (*dto.MessageResponse, error) {
	message, err := s.security.DisableTwoFactor(ctx, store, req.Password, req.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedTwoFactor, err)
	}

	logger.Log(ctx).Info(ctx, LogTwoFactorDisabled)

	return &dto.MessageResponse{Message: message}, nil
}

// GenerateBackupCodes выдает первый набор резервных кодов.
func (s *SecurityServiceImpl) GenerateBackupCodes(ctx context.Context, store credentials.Store) (*dto.BackupCodesResponse, error) {
	codes, err := s.security.GenerateBackupCodes(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedTwoFactor, err)
	}

	logger.Log(ctx).Info(ctx, LogBackupCodesIssued, zap.Int("count", len(codes.BackupCodes)))

	return &dto.BackupCodesResponse{
		BackupCodes: codes.BackupCodes,
		Message:     codes.Message,
		Warning:     codes.Warning,
	}, nil
}

// RegenerateBackupCodes заменяет резервные коды новым набором.
func (s *SecurityServiceImpl) RegenerateBackupCodes(ctx context.Context, store credentials.Store, req *dto.TwoFactorConfirmRequest) (*dto.BackupCodesResponse, error) {
	codes, err := s.security.RegenerateBackupCodes(ctx, store, req.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedTwoFactor, err)
	}

	logger.Log(ctx).Info(ctx, LogBackupCodesIssued, zap.Int("count", len(codes.BackupCodes)))

	return &dto.BackupCodesResponse{
		BackupCodes: codes.BackupCodes,
		Message:     codes.Message,
		Warning:     codes.Warning,
	}, nil
}

// ChangePassword меняет пароль и завершает текущую сессию. Бекенд отзывает
// все refresh-токены пользователя, так что сохраненная пара уже мертва:
// локальная очистка идет независимо от ее результата.
func (s *SecurityServiceImpl) ChangePassword(ctx context.Context, sessionID string, store credentials.Store, req *dto.ChangePasswordRequest) (*dto.MessageResponse, error) {
	log := logger.Log(ctx)

	message, err := s.security.ChangePassword(ctx, store, backendPort.ChangePasswordParams{
		CurrentPassword:    req.CurrentPassword,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	})
	if err != nil {
		log.Debug(ctx, ErrorFailedPasswordChange, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedPasswordChange, err)
	}

	s.sessions.Invalidate(ctx, sessionID)
	if err := store.Clear(ctx); err != nil {
		log.Error(ctx, ErrorFailedToClearTokens, zap.Error(err))
	}

	log.Info(ctx, LogPasswordChanged)

	return &dto.MessageResponse{Message: message}, nil
}

// ForgotPassword запрашивает письмо восстановления пароля.
func (s *SecurityServiceImpl) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.MessageResponse, error) {
	message, err := s.security.ForgotPassword(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedPasswordReset, err)
	}

	logger.Log(ctx).Info(ctx, LogPasswordResetRequest)

	return &dto.MessageResponse{Message: message}, nil
}

// ResetPassword завершает восстановление пароля по токену из письма.
func (s *SecurityServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.MessageResponse, error) {
	message, err := s.security.ResetPassword(ctx, backendPort.ResetPasswordParams{
		Token:              req.Token,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedPasswordReset, err)
	}

	logger.Log(ctx).Info(ctx, LogPasswordResetComplete)

	return &dto.MessageResponse{Message: message}, nil
}
