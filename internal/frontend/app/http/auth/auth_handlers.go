// Package auth содержит HTTP обработчики аутентификации и сессии.
package auth

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
	LogHandlerRegister      = "auth handler: register"
	LogHandlerLogin         = "auth handler: login"
	LogHandlerLogout        = "auth handler: logout"
	LogHandlerSession       = "auth handler: session"
	LogHandlerUpdateProfile = "auth handler: update profile"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authService services.AuthService
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authService services.AuthService) *Handler {
	return &Handler{
		authService: authService,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.Email == "" || req.FullName == "" || req.Password == "" {
		return httperr.BadRequest(ctx, "email, full name and password are required")
	}

	response, err := h.authService.Register(requestCtx, &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return httperr.BadRequest(ctx, "email and password are required")
	}

	response, err := h.authService.Login(requestCtx, middleware.SessionID(ctx), middleware.CredentialStore(ctx), &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout обрабатывает запрос на выход пользователя.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	if err := h.authService.Logout(requestCtx, middleware.SessionID(ctx), middleware.CredentialStore(ctx)); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "logged out successfully",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Session обрабатывает запрос текущего пользователя сессии.
func (h *Handler) Session(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerSession)

	response, err := h.authService.Session(requestCtx, middleware.SessionID(ctx), middleware.CredentialStore(ctx))
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateProfile обрабатывает запрос на обновление профиля пользователя.
func (h *Handler) UpdateProfile(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateProfile)

	var req dto.UpdateProfileRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if len(req) == 0 {
		return httperr.BadRequest(ctx, "no fields to update")
	}

	response, err := h.authService.UpdateProfile(requestCtx, middleware.SessionID(ctx), middleware.CredentialStore(ctx), req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
