package config

import "time"

// SessionConfig представляет конфигурацию браузерных сессий.
type SessionConfig struct {
	CookieName   string        `yaml:"cookie_name" env:"FRONTEND_SESSION_COOKIE_NAME" env-default:"nclex_session"`
	CookieSecure bool          `yaml:"cookie_secure" env:"FRONTEND_SESSION_COOKIE_SECURE" env-default:"false"`
	TTL          time.Duration `yaml:"ttl" env:"FRONTEND_SESSION_TTL" env-default:"720h"`
	UserCacheTTL time.Duration `yaml:"user_cache_ttl" env:"FRONTEND_SESSION_USER_CACHE_TTL" env-default:"5m"`
}
