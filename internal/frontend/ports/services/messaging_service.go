package services

import (
	"context"

	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
)

// MessagingService определяет операции переписки.
type MessagingService interface {
	Conversations(ctx context.Context, store credentials.Store) ([]domain.Conversation, error)
	Thread(ctx context.Context, store credentials.Store, userID string) ([]domain.Message, error)
	Send(ctx context.Context, store credentials.Store, receiverID, content string) (*domain.Message, error)
}
