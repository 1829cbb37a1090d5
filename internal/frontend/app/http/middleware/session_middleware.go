// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"nclexfront/internal/frontend/config"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Ключи Locals, заполняемые сессионным middleware.
const (
	localSessionID       = "sessionID"
	localCredentialStore = "credentialStore"
	localRequestContext  = "requestContext"
)

// HeaderRequestID - заголовок сквозного идентификатора запроса.
const HeaderRequestID = "X-Request-ID"

// NewSessionMiddleware создает промежуточное ПО браузерной сессии.
// Каждому браузеру выдается cookie с идентификатором сессии; по нему
// выбирается хранилище учетных данных, через которое идут все запросы
// к бекенду в рамках этой сессии.
func NewSessionMiddleware(cfg *config.SessionConfig, provider credentials.Provider) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		sessionID := ctx.Cookies(cfg.CookieName)
		if sessionID == "" {
			sessionID = uuid.NewString()
			ctx.Cookie(&fiber.Cookie{
				Name:     cfg.CookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(cfg.TTL.Seconds()),
				HTTPOnly: true,
				Secure:   cfg.CookieSecure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))

		ctx.Locals(localSessionID, sessionID)
		ctx.Locals(localCredentialStore, provider.ForSession(sessionID))
		ctx.Locals(localRequestContext, requestCtx)

		return ctx.Next()
	}
}

// SessionID возвращает идентификатор сессии текущего запроса.
func SessionID(ctx fiber.Ctx) string {
	sessionID, _ := ctx.Locals(localSessionID).(string)
	return sessionID
}

// CredentialStore возвращает хранилище учетных данных текущей сессии.
func CredentialStore(ctx fiber.Ctx) credentials.Store {
	store, _ := ctx.Locals(localCredentialStore).(credentials.Store)
	return store
}

// RequestContext возвращает контекст запроса с идентификатором запроса.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(localRequestContext).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
