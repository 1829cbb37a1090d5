package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/domain"
	backendPort "nclexfront/internal/frontend/ports/backend"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogMessageSent = "message sent"

	ErrorFailedToListConversations = "failed to list conversations"
	ErrorFailedToLoadThread        = "failed to load conversation thread"
	ErrorFailedToSendMessage       = "failed to send message"
)

// MessagingServiceImpl реализует services.MessagingService поверх клиента бекенда.
type MessagingServiceImpl struct {
	messages backendPort.MessagesAPI
}

// NewMessagingService создает новый экземпляр MessagingServiceImpl.
func NewMessagingService(messages backendPort.MessagesAPI) *MessagingServiceImpl {
	return &MessagingServiceImpl{messages: messages}
}

// Conversations возвращает список собеседников пользователя.
func (s *MessagingServiceImpl) Conversations(ctx context.Context, store credentials.Store) ([]domain.Conversation, error) {
	conversations, err := s.messages.Conversations(ctx, store)
	if err != nil {
		logger.Log(ctx).Debug(ctx, ErrorFailedToListConversations, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListConversations, err)
	}

	return conversations, nil
}

// Thread возвращает переписку с указанным пользователем.
func (s *MessagingServiceImpl) Thread(ctx context.Context, store credentials.Store, userID string) ([]domain.Message, error) {
	messages, err := s.messages.Thread(ctx, store, userID)
	if err != nil {
		logger.Log(ctx).Debug(ctx, ErrorFailedToLoadThread, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToLoadThread, err)
	}

	return messages, nil
}

// Send отправляет сообщение указанному пользователю.
func (s *MessagingServiceImpl) Send(ctx context.Context, store credentials.Store, receiverID, content string) (*domain.Message, error) {
	log := logger.Log(ctx)

	message, err := s.messages.Send(ctx, store, receiverID, content)
	if err != nil {
		log.Debug(ctx, ErrorFailedToSendMessage, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToSendMessage, err)
	}

	log.Info(ctx, LogMessageSent, zap.String("receiver_id", receiverID))

	return message, nil
}
