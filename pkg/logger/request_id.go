package logger

import (
	"context"

	"github.com/google/uuid"
)

type ctxKeyRequestID struct{}

// NewRequestIDContext привязывает идентификатор запроса к контексту.
// Пустой requestID означает, что браузер не прислал X-Request-ID:
// тогда идентификатор генерируется на месте.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = GenerateRequestID()
	}
	return context.WithValue(ctx, ctxKeyRequestID{}, requestID)
}

// GetRequestID возвращает идентификатор запроса из контекста, если он был
// привязан через NewRequestIDContext.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeyRequestID{}).(string)
	return id, ok
}

// GenerateRequestID выдает новый уникальный идентификатор запроса.
func GenerateRequestID() string {
	return uuid.New().String()
}
