// Package logger предоставляет обертку над zap с поддержкой контекста и request_id.
package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment определяет режим работы логгера.
type Environment string

// Режимы работы логгера.
const (
	Development Environment = "development"
	Production  Environment = "production"
)

// RequestID - имя поля для идентификатора запроса.
const RequestID = "request_id"

// Logger обертывает zap.Logger и добавляет request_id из контекста.
type Logger struct {
	l *zap.Logger
}

// NewLogger создает новый логгер для указанного окружения и уровня логирования.
// Пустой уровень означает уровень по умолчанию (info).
func NewLogger(env Environment, level string) (*Logger, error) {
	var config zap.Config
	if env == Development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		config.Level = zap.NewAtomicLevelAt(parsed)
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building zap logger: %w", err)
	}

	return &Logger{l: zapLogger}, nil
}

// With возвращает копию логгера с дополнительными полями.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{l: l.l.With(fields...)}
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Info(msg, addRequestID(ctx, fields)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Warn(msg, addRequestID(ctx, fields)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Error(msg, addRequestID(ctx, fields)...)
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Debug(msg, addRequestID(ctx, fields)...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Fatal(msg, addRequestID(ctx, fields)...)
}

func (l *Logger) Sync() error {
	return l.l.Sync()
}

// addRequestID добавляет request_id из контекста к полям логирования.
func addRequestID(ctx context.Context, fields []zap.Field) []zap.Field {
	if id, ok := GetRequestID(ctx); ok {
		return append(fields, zap.String(RequestID, id))
	}
	return fields
}
