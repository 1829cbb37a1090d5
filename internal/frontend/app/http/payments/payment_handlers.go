// Package payments содержит HTTP обработчики платежей.
package payments

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
	LogHandlerInitiate = "payment handler: initiate"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики платежей.
type Handler struct {
	paymentService services.PaymentService
}

// NewHandler создает новый экземпляр обработчика платежей.
func NewHandler(paymentService services.PaymentService) *Handler {
	return &Handler{
		paymentService: paymentService,
	}
}

// Initiate обрабатывает запрос на инициацию платежа.
func (h *Handler) Initiate(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerInitiate)

	var req dto.PaymentRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.PaymentMethod == "" {
		return httperr.BadRequest(ctx, "payment method is required")
	}

	receipt, err := h.paymentService.Initiate(requestCtx, middleware.CredentialStore(ctx), &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(receipt); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
