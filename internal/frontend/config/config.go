// Package config содержит конфигурацию фронтенд-шлюза.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "nclexfront/pkg/config"
	"nclexfront/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	LogLoadingConfig    = "Loading frontend service configuration"
	LogConfigLoaded     = "Configuration loaded successfully"
	ErrFailedLoadConfig = "Failed to load configuration"

	serviceName = "frontend"
)

// Config представляет полную конфигурацию фронтенд-шлюза.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Backend  BackendConfig  `yaml:"backend"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
}

// Load загружает конфигурацию из переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogLoadingConfig)

	cfg, err := pkgconfig.Load[Config](ctx, serviceName)
	if err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_host", cfg.HTTP.Host),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout),
		zap.String("backend_base_url", cfg.Backend.BaseURL),
		zap.String("redis_address", cfg.Redis.GetAddressString()),
		zap.Duration("session_ttl", cfg.Session.TTL))

	return cfg, nil
}

// GetEnvironment возвращает режим работы логгера.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if c.Mode == "development" {
		return logger.Development
	}
	return logger.Production
}
