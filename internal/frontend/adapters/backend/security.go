package backend

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	backendPort "nclexfront/internal/frontend/ports/backend"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodTwoFactorStatus       = "TwoFactorStatus"
	LogMethodEnableTwoFactor       = "EnableTwoFactor"
	LogMethodConfirmTwoFactor      = "ConfirmTwoFactor"
	LogMethodDisableTwoFactor      = "DisableTwoFactor"
	LogMethodGenerateBackupCodes   = "GenerateBackupCodes"
	LogMethodRegenerateBackupCodes = "RegenerateBackupCodes"
	LogMethodChangePassword        = "ChangePassword"
	LogMethodForgotPassword        = "ForgotPassword"
	LogMethodResetPassword         = "ResetPassword"

	ErrorFailedTwoFactorStatus = "failed to get 2fa status"
	ErrorFailedTwoFactorSetup  = "failed to set up 2fa"
	ErrorFailedBackupCodes     = "failed to issue backup codes"
	ErrorFailedChangePassword  = "failed to change password"
	ErrorFailedPasswordReset   = "failed to request password reset"
)

// Пути эндпоинтов управления 2FA и паролями.
const (
	pathTwoFactorStatus       = "/api/auth/2fa/status/"
	pathTwoFactorEnable       = "/api/auth/2fa/enable/"
	pathTwoFactorConfirm      = "/api/auth/2fa/confirm/"
	pathTwoFactorDisable      = "/api/auth/2fa/disable/"
	pathBackupCodes           = "/api/auth/2fa/backup-codes/"
	pathRegenerateBackupCodes = "/api/auth/2fa/regenerate-backup-codes/"
	pathChangePassword        = "/api/auth/change-password/"
	pathForgotPassword        = "/api/auth/forgot-password/"
	pathResetPassword         = "/api/auth/reset-password/confirm/"
)

// messagePayload - минимальный ответ бекенда с одним полем message.
type messagePayload struct {
	Message string `json:"message"`
}

// TwoFactorStatus возвращает текущее состояние 2FA пользователя.
func (c *Client) TwoFactorStatus(ctx context.Context, store credentials.Store) (*backendPort.TwoFactorStatus, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodTwoFactorStatus))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodGet,
		Path:   pathTwoFactorStatus,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedTwoFactorStatus, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var status backendPort.TwoFactorStatus
	if err := decodeJSON(resp.Body, &status); err != nil {
		log.Error(ctx, ErrorFailedTwoFactorStatus, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedTwoFactorStatus, err)
	}

	return &status, nil
}

// EnableTwoFactor начинает настройку 2FA. Бекенд держит выданный секрет
// временно: без подтверждения кодом настройка истекает.
func (c *Client) EnableTwoFactor(ctx context.Context, store credentials.Store) (*backendPort.TwoFactorSetup, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodEnableTwoFactor))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodPost,
		Path:   pathTwoFactorEnable,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedTwoFactorSetup, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var setup backendPort.TwoFactorSetup
	if err := decodeJSON(resp.Body, &setup); err != nil {
		log.Error(ctx, ErrorFailedTwoFactorSetup, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedTwoFactorSetup, err)
	}

	return &setup, nil
}

// ConfirmTwoFactor подтверждает настройку 2FA кодом из аутентификатора.
func (c *Client) ConfirmTwoFactor(ctx context.Context, store credentials.Store, token string) (string, error) {
	return c.postForMessage(ctx, store, LogMethodConfirmTwoFactor, pathTwoFactorConfirm,
		map[string]string{"token": token})
}

// DisableTwoFactor выключает 2FA. Бекенд требует текущий пароль и
// действующий код.
func (c *Client) DisableTwoFactor(ctx context.Context, store credentials.Store, password, token string) (string, error) {
	return c.postForMessage(ctx, store, LogMethodDisableTwoFactor, pathTwoFactorDisable,
		map[string]string{"password": password, "token": token})
}

// GenerateBackupCodes выдает первый набор резервных кодов.
func (c *Client) GenerateBackupCodes(ctx context.Context, store credentials.Store) (*backendPort.BackupCodes, error) {
	return c.postForBackupCodes(ctx, store, LogMethodGenerateBackupCodes, pathBackupCodes, nil)
}

// RegenerateBackupCodes заменяет резервные коды новым набором.
// Старые коды при этом перестают действовать.
func (c *Client) RegenerateBackupCodes(ctx context.Context, store credentials.Store, token string) (*backendPort.BackupCodes, error) {
	return c.postForBackupCodes(ctx, store, LogMethodRegenerateBackupCodes, pathRegenerateBackupCodes,
		map[string]string{"token": token})
}

// ChangePassword меняет пароль текущего пользователя.
func (c *Client) ChangePassword(ctx context.Context, store credentials.Store, params backendPort.ChangePasswordParams) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodChangePassword))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodPost,
		Path:   pathChangePassword,
		JSON:   params,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedChangePassword, zap.Error(err))
		return "", err
	}

	if !resp.Success() {
		return "", Classify(resp.StatusCode, resp.Body)
	}

	var payload messagePayload
	if err := decodeJSON(resp.Body, &payload); err != nil {
		log.Error(ctx, ErrorFailedChangePassword, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedChangePassword, err)
	}

	return payload.Message, nil
}

// ForgotPassword запрашивает письмо со ссылкой восстановления пароля.
// Бекенд отвечает одинаково для известных и неизвестных адресов.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	return c.publicPostForMessage(ctx, LogMethodForgotPassword, pathForgotPassword,
		map[string]string{"email": email})
}

// ResetPassword завершает восстановление пароля по токену из письма.
func (c *Client) ResetPassword(ctx context.Context, params backendPort.ResetPasswordParams) (string, error) {
	return c.publicPostForMessage(ctx, LogMethodResetPassword, pathResetPassword, params)
}

// postForMessage выполняет аутентифицированный POST, от которого ждут
// только подтверждающее сообщение.
func (c *Client) postForMessage(ctx context.Context, store credentials.Store, method, path string, body any) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", method))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodPost,
		Path:   path,
		JSON:   body,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedTwoFactorSetup, zap.Error(err))
		return "", err
	}

	if !resp.Success() {
		return "", Classify(resp.StatusCode, resp.Body)
	}

	var payload messagePayload
	if err := decodeJSON(resp.Body, &payload); err != nil {
		log.Error(ctx, ErrorFailedTwoFactorSetup, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedTwoFactorSetup, err)
	}

	return payload.Message, nil
}

// postForBackupCodes выполняет POST, возвращающий набор резервных кодов.
func (c *Client) postForBackupCodes(ctx context.Context, store credentials.Store, method, path string, body any) (*backendPort.BackupCodes, error) {
	log := logger.Log(ctx).With(zap.String("method", method))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodPost,
		Path:   path,
		JSON:   body,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedBackupCodes, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var codes backendPort.BackupCodes
	if err := decodeJSON(resp.Body, &codes); err != nil {
		log.Error(ctx, ErrorFailedBackupCodes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedBackupCodes, err)
	}

	return &codes, nil
}

// publicPostForMessage выполняет публичный POST без учетных данных сессии.
func (c *Client) publicPostForMessage(ctx context.Context, method, path string, body any) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", method))

	resp, err := c.DoPublic(ctx, Request{
		Method: http.MethodPost,
		Path:   path,
		JSON:   body,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedPasswordReset, zap.Error(err))
		return "", err
	}

	if !resp.Success() {
		return "", Classify(resp.StatusCode, resp.Body)
	}

	var payload messagePayload
	if err := decodeJSON(resp.Body, &payload); err != nil {
		log.Error(ctx, ErrorFailedPasswordReset, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedPasswordReset, err)
	}

	return payload.Message, nil
}
