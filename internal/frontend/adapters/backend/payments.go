package backend

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/domain"
	backendPort "nclexfront/internal/frontend/ports/backend"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodInitiatePayment = "InitiatePayment"

	ErrorFailedToInitiatePayment = "failed to initiate payment"
)

// pathInitiatePayment - путь эндпоинта инициации платежа.
const pathInitiatePayment = "/api/payments/initiate/"

// Initiate инициирует платеж.
func (c *Client) Initiate(ctx context.Context, store credentials.Store, params backendPort.PaymentParams) (*domain.PaymentReceipt, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodInitiatePayment))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodPost,
		Path:   pathInitiatePayment,
		JSON:   params,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToInitiatePayment, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var receipt domain.PaymentReceipt
	if err := decodeJSON(resp.Body, &receipt); err != nil {
		log.Error(ctx, ErrorFailedToInitiatePayment, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToInitiatePayment, err)
	}

	return &receipt, nil
}
