// Package security содержит HTTP обработчики управления 2FA и паролями.
package security

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/app/http/httperr"
	"nclexfront/internal/frontend/app/http/middleware"
	"nclexfront/internal/frontend/ports/services"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerTwoFactorStatus = "security handler: 2fa status"
	LogHandlerTwoFactorEnable = "security handler: enable 2fa"
	LogHandlerTwoFactorManage = "security handler: manage 2fa"
	LogHandlerBackupCodes     = "security handler: backup codes"
	LogHandlerChangePassword  = "security handler: change password"
	LogHandlerForgotPassword  = "security handler: forgot password"
	LogHandlerResetPassword   = "security handler: reset password"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики безопасности аккаунта.
type Handler struct {
	securityService services.SecurityService
}

// NewHandler создает новый экземпляр обработчика безопасности.
func NewHandler(securityService services.SecurityService) *Handler {
	return &Handler{
		securityService: securityService,
	}
}

// TwoFactorStatus возвращает состояние 2FA текущего пользователя.
func (h *Handler) TwoFactorStatus(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerTwoFactorStatus)

	response, err := h.securityService.TwoFactorStatus(requestCtx, middleware.CredentialStore(ctx))
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	return sendJSON(ctx, http.StatusOK, response)
}

// EnableTwoFactor начинает настройку 2FA и возвращает секрет с QR-кодом.
func (h *Handler) EnableTwoFactor(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerTwoFactorEnable)

	response, err := h.securityService.EnableTwoFactor(requestCtx, middleware.CredentialStore(ctx))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	return sendJSON(ctx, http.StatusOK, response)
}

// ConfirmTwoFactor завершает настройку 2FA кодом из аутентификатора.
func (h *Handler) ConfirmTwoFactor(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerTwoFactorManage)

	var req dto.TwoFactorConfirmRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.Token == "" {
		return httperr.BadRequest(ctx, "token is required")
	}

	response, err := h.securityService.ConfirmTwoFactor(requestCtx, middleware.CredentialStore(ctx), &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	return sendJSON(ctx, http.StatusOK, response)
}

// DisableTwoFactor выключает 2FA по паролю и действующему коду.
func (h *Handler) DisableTwoFactor(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerTwoFactorManage)

	var req dto.TwoFactorDisableRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.Password == "" || req.Token == "" {
		return httperr.BadRequest(ctx, "password and token are required")
	}

	response, err := h.securityService.DisableTwoFactor(requestCtx, middleware.CredentialStore(ctx), &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	return sendJSON(ctx, http.StatusOK, response)
}

// GenerateBackupCodes выдает первый набор резервных кодов.
func (h *Handler) GenerateBackupCodes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerBackupCodes)

	response, err := h.securityService.GenerateBackupCodes(requestCtx, middleware.CredentialStore(ctx))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	return sendJSON(ctx, http.StatusOK, response)
}

// RegenerateBackupCodes заменяет резервные коды новым набором.
func (h *Handler) RegenerateBackupCodes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerBackupCodes)

	var req dto.TwoFactorConfirmRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.Token == "" {
		return httperr.BadRequest(ctx, "token is required")
	}

	response, err := h.securityService.RegenerateBackupCodes(requestCtx, middleware.CredentialStore(ctx), &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	return sendJSON(ctx, http.StatusOK, response)
}

// ChangePassword меняет пароль текущего пользователя и завершает сессию.
func (h *Handler) ChangePassword(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerChangePassword)

	var req dto.ChangePasswordRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		return httperr.BadRequest(ctx, "current and new passwords are required")
	}

	response, err := h.securityService.ChangePassword(requestCtx, middleware.SessionID(ctx), middleware.CredentialStore(ctx), &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	return sendJSON(ctx, http.StatusOK, response)
}

// ForgotPassword запрашивает письмо восстановления пароля.
func (h *Handler) ForgotPassword(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerForgotPassword)

	var req dto.ForgotPasswordRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.Email == "" {
		return httperr.BadRequest(ctx, "email is required")
	}

	response, err := h.securityService.ForgotPassword(requestCtx, &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	return sendJSON(ctx, http.StatusOK, response)
}

// ResetPassword завершает восстановление пароля по токену из письма.
func (h *Handler) ResetPassword(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerResetPassword)

	var req dto.ResetPasswordRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.Token == "" || req.NewPassword == "" {
		return httperr.BadRequest(ctx, "token and new password are required")
	}

	response, err := h.securityService.ResetPassword(requestCtx, &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	return sendJSON(ctx, http.StatusOK, response)
}

func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
