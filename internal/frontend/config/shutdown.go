package config

import "time"

// ShutdownConfig представляет конфигурацию корректного завершения.
type ShutdownConfig struct {
	Timeout int `yaml:"timeout" env:"FRONTEND_SHUTDOWN_TIMEOUT" env-default:"5"`
}

// GetTimeout возвращает timeout завершения как Duration.
func (c *ShutdownConfig) GetTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
