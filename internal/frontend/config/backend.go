package config

import "time"

// BackendConfig представляет конфигурацию подключения к REST бекенду.
type BackendConfig struct {
	BaseURL        string        `yaml:"base_url" env:"FRONTEND_BACKEND_BASE_URL" env-default:"http://localhost:8000"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"FRONTEND_BACKEND_REQUEST_TIMEOUT" env-default:"15s"`
}
