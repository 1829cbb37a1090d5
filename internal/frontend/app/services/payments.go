package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/domain"
	backendPort "nclexfront/internal/frontend/ports/backend"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogPaymentInitiated = "payment initiated"

	ErrorFailedToInitiatePayment = "failed to initiate payment"
)

// PaymentServiceImpl реализует services.PaymentService поверх клиента бекенда.
// Данные карты не логируются и нигде не сохраняются.
type PaymentServiceImpl struct {
	payments backendPort.PaymentsAPI
}

// NewPaymentService создает новый экземпляр PaymentServiceImpl.
func NewPaymentService(payments backendPort.PaymentsAPI) *PaymentServiceImpl {
	return &PaymentServiceImpl{payments: payments}
}

// Initiate инициирует платеж через бекенд.
func (s *PaymentServiceImpl) Initiate(ctx context.Context, store credentials.Store, req *dto.PaymentRequest) (*domain.PaymentReceipt, error) {
	log := logger.Log(ctx)

	receipt, err := s.payments.Initiate(ctx, store, backendPort.PaymentParams{
		PaymentMethod: req.PaymentMethod,
		CardDetails:   req.CardDetails,
		Amount:        req.Amount,
		Currency:      req.Currency,
	})
	if err != nil {
		log.Debug(ctx, ErrorFailedToInitiatePayment, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToInitiatePayment, err)
	}

	log.Info(ctx, LogPaymentInitiated, zap.String("transaction_id", receipt.TransactionID))

	return receipt, nil
}
