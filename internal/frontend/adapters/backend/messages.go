package backend

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodConversations = "Conversations"
	LogMethodThread        = "Thread"
	LogMethodSend          = "Send"

	ErrorFailedToListConversations = "failed to list conversations"
	ErrorFailedToGetThread         = "failed to get conversation thread"
	ErrorFailedToSendMessage       = "failed to send message"
)

// Пути эндпоинтов переписки.
const (
	pathConversations = "/api/messages/conversations/"
	pathConversation  = "/api/messages/conversation/"
	pathSendMessage   = "/api/messages/send/"
)

// Conversations возвращает список диалогов текущего пользователя.
func (c *Client) Conversations(ctx context.Context, store credentials.Store) ([]domain.Conversation, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodConversations))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodGet,
		Path:   pathConversations,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToListConversations, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var conversations []domain.Conversation
	if err := decodeJSON(resp.Body, &conversations); err != nil {
		log.Error(ctx, ErrorFailedToListConversations, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListConversations, err)
	}

	return conversations, nil
}

// Thread возвращает переписку с указанным пользователем.
func (c *Client) Thread(ctx context.Context, store credentials.Store, userID string) ([]domain.Message, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodThread), zap.String("user_id", userID))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodGet,
		Path:   pathConversation + userID + "/",
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToGetThread, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var messages []domain.Message
	if err := decodeJSON(resp.Body, &messages); err != nil {
		log.Error(ctx, ErrorFailedToGetThread, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGetThread, err)
	}

	return messages, nil
}

// Send отправляет сообщение указанному пользователю.
func (c *Client) Send(ctx context.Context, store credentials.Store, receiverID, content string) (*domain.Message, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSend), zap.String("receiver_id", receiverID))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodPost,
		Path:   pathSendMessage,
		JSON: map[string]string{
			"receiver_id": receiverID,
			"content":     content,
		},
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToSendMessage, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var message domain.Message
	if err := decodeJSON(resp.Body, &message); err != nil {
		log.Error(ctx, ErrorFailedToSendMessage, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToSendMessage, err)
	}

	return &message, nil
}
