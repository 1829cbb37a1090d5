package services

import (
	"context"

	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
)

// PaymentService определяет платежные операции.
type PaymentService interface {
	Initiate(ctx context.Context, store credentials.Store, req *dto.PaymentRequest) (*domain.PaymentReceipt, error)
}
