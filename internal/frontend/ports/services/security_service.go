package services

import (
	"context"

	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/ports/credentials"
)

// SecurityService определяет операции управления 2FA и паролями.
type SecurityService interface {
	TwoFactorStatus(ctx context.Context, store credentials.Store) (*dto.TwoFactorStatusResponse, error)
	EnableTwoFactor(ctx context.Context, store credentials.Store) (*dto.TwoFactorSetupResponse, error)
	ConfirmTwoFactor(ctx context.Context, store credentials.Store, req *dto.TwoFactorConfirmRequest) (*dto.MessageResponse, error)
	DisableTwoFactor(ctx context.Context, store credentials.Store, req *dto.TwoFactorDisableRequest) (*dto.MessageResponse, error)
	GenerateBackupCodes(ctx context.Context, store credentials.Store) (*dto.BackupCodesResponse, error)
	RegenerateBackupCodes(ctx context.Context, store credentials.Store, req *dto.TwoFactorConfirmRequest) (*dto.BackupCodesResponse, error)

	// ChangePassword меняет пароль и завершает текущую сессию: бекенд
	// отзывает все refresh-токены пользователя, хранить старую пару
	// бессмысленно.
	ChangePassword(ctx context.Context, sessionID string, store credentials.Store, req *dto.ChangePasswordRequest) (*dto.MessageResponse, error)

	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.MessageResponse, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.MessageResponse, error)
}
