// Package httperr переводит классифицированные ошибки шлюза в HTTP ответы.
package httperr

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"nclexfront/internal/frontend/domain"
)

// Render отправляет JSON ответ об ошибке, соответствующий ее виду.
// Неклассифицированные ошибки не раскрываются клиенту.
func Render(ctx fiber.Ctx, err error) error {
	apiErr, ok := domain.AsAPIError(err)
	if !ok {
		return send(ctx, fiber.StatusInternalServerError, fiber.Map{
			"error": domain.FallbackErrorMessage,
		})
	}

	switch apiErr.Kind {
	case domain.KindRateLimited:
		return send(ctx, fiber.StatusTooManyRequests, fiber.Map{
			"error":       apiErr.Message,
			"retry_after": apiErr.RetryAfterSeconds,
		})
	case domain.KindLocked:
		return send(ctx, fiber.StatusLocked, fiber.Map{
			"error": apiErr.Message,
		})
	case domain.KindValidation:
		return send(ctx, fiber.StatusBadRequest, fiber.Map{
			"error":        apiErr.Message,
			"field_errors": apiErr.FieldErrors,
		})
	case domain.KindAuthExpired:
		return send(ctx, fiber.StatusUnauthorized, fiber.Map{
			"error": apiErr.Message,
		})
	default:
		return send(ctx, fiber.StatusBadGateway, fiber.Map{
			"error": apiErr.Message,
		})
	}
}

// BadRequest отправляет ответ 400 с заданным сообщением.
func BadRequest(ctx fiber.Ctx, message string) error {
	return send(ctx, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// Forbidden отправляет ответ 403 с заданным сообщением.
func Forbidden(ctx fiber.Ctx, message string) error {
	return send(ctx, fiber.StatusForbidden, fiber.Map{"error": message})
}

func send(ctx fiber.Ctx, statusCode int, body fiber.Map) error {
	if err := ctx.Status(statusCode).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
