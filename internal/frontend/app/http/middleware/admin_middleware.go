package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"nclexfront/internal/frontend/app/http/httperr"
	"nclexfront/internal/frontend/app/session"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogAdminMiddleware = "admin middleware"

	ErrorAdminAccessRequired = "admin access required"
)

// NewAdminMiddleware создает промежуточное ПО, пропускающее только администраторов.
// Бекенд проверяет права повторно; эта проверка лишь закрывает консоль от
// обычных пользователей на уровне шлюза.
func NewAdminMiddleware(sessions *session.Manager) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "admin"))
		log.Debug(requestCtx, LogAdminMiddleware)

		user, err := sessions.Current(requestCtx, SessionID(ctx), CredentialStore(ctx))
		if err != nil {
			log.Debug(requestCtx, ErrorAdminAccessRequired, zap.Error(err))
			return httperr.Render(ctx, err)
		}

		if !user.IsAdmin() {
			log.Debug(requestCtx, ErrorAdminAccessRequired, zap.String("role", user.Role))
			return httperr.Forbidden(ctx, ErrorAdminAccessRequired)
		}

		return ctx.Next()
	}
}
