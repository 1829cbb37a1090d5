// Package messaging содержит HTTP обработчики переписки.
package messaging

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
	LogHandlerConversations = "messaging handler: conversations"
	LogHandlerThread        = "messaging handler: thread"
	LogHandlerSend          = "messaging handler: send"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики переписки.
type Handler struct {
	messagingService services.MessagingService
}

// NewHandler создает новый экземпляр обработчика переписки.
func NewHandler(messagingService services.MessagingService) *Handler {
	return &Handler{
		messagingService: messagingService,
	}
}

// Conversations обрабатывает запрос списка собеседников.
func (h *Handler) Conversations(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerConversations)

	conversations, err := h.messagingService.Conversations(requestCtx, middleware.CredentialStore(ctx))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(conversations); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Thread обрабатывает запрос переписки с указанным пользователем.
func (h *Handler) Thread(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerThread)

	userID := ctx.Params("user_id")
	if userID == "" {
		return httperr.BadRequest(ctx, "user id is required")
	}

	messages, err := h.messagingService.Thread(requestCtx, middleware.CredentialStore(ctx), userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(messages); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Send обрабатывает запрос на отправку сообщения.
func (h *Handler) Send(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSend)

	var req dto.SendMessageRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.ReceiverID == "" || req.Content == "" {
		return httperr.BadRequest(ctx, "receiver id and content are required")
	}

	message, err := h.messagingService.Send(requestCtx, middleware.CredentialStore(ctx), req.ReceiverID, req.Content)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(message); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
