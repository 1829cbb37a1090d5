// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"nclexfront/internal/frontend/app/http/admin"
	"nclexfront/internal/frontend/app/http/auth"
	"nclexfront/internal/frontend/app/http/courses"
	"nclexfront/internal/frontend/app/http/messaging"
	"nclexfront/internal/frontend/app/http/middleware"
	"nclexfront/internal/frontend/app/http/payments"
	"nclexfront/internal/frontend/app/http/security"
	"nclexfront/internal/frontend/app/session"
	"nclexfront/internal/frontend/config"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/internal/frontend/ports/services"
)

// Services объединяет сервисы, обслуживаемые маршрутизатором.
type Services struct {
	Auth      services.AuthService
	Security  services.SecurityService
	Courses   services.CourseService
	Messaging services.MessagingService
	Admin     services.AdminService
	Payments  services.PaymentService
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, cfg *config.SessionConfig, provider credentials.Provider, sessions *session.Manager, svc Services) {
	authHandler := auth.NewHandler(svc.Auth)
	securityHandler := security.NewHandler(svc.Security)
	courseHandler := courses.NewHandler(svc.Courses)
	messagingHandler := messaging.NewHandler(svc.Messaging)
	adminHandler := admin.NewHandler(svc.Admin)
	paymentHandler := payments.NewHandler(svc.Payments)

	// Middleware для всех запросов.
	app.Use(middleware.NewSessionMiddleware(cfg, provider))
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (регистрация и вход публичные, остальное привязано к сессии).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/session", authHandler.Session)
	authRoutes.Patch("/profile", authHandler.UpdateProfile)

	// Восстановление и смена пароля.
	authRoutes.Post("/forgot-password", securityHandler.ForgotPassword)
	authRoutes.Post("/reset-password/confirm", securityHandler.ResetPassword)
	authRoutes.Post("/change-password", securityHandler.ChangePassword)

	// Управление двухфакторной аутентификацией.
	twoFactorRoutes := authRoutes.Group("/2fa")
	twoFactorRoutes.Get("/status", securityHandler.TwoFactorStatus)
	twoFactorRoutes.Post("/enable", securityHandler.EnableTwoFactor)
	twoFactorRoutes.Post("/confirm", securityHandler.ConfirmTwoFactor)
	twoFactorRoutes.Post("/disable", securityHandler.DisableTwoFactor)
	twoFactorRoutes.Post("/backup-codes", securityHandler.GenerateBackupCodes)
	twoFactorRoutes.Post("/regenerate-backup-codes", securityHandler.RegenerateBackupCodes)

	// Короткий путь для опроса сессии браузерным приложением.
	apiV1.Get("/session", authHandler.Session)

	// Дашборд и курсы.
	apiV1.Get("/dashboard", courseHandler.Dashboard)
	courseRoutes := apiV1.Group("/courses")
	courseRoutes.Get("/", courseHandler.Courses)
	courseRoutes.Get("/:course_id/progress", courseHandler.Progress)
	courseRoutes.Put("/:course_id/progress", courseHandler.SetProgress)

	// Переписка.
	messageRoutes := apiV1.Group("/messages")
	messageRoutes.Get("/conversations", messagingHandler.Conversations)
	messageRoutes.Get("/conversations/:user_id", messagingHandler.Thread)
	messageRoutes.Post("/send", messagingHandler.Send)

	// Административная консоль (только для роли admin).
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(middleware.NewAdminMiddleware(sessions))
	adminRoutes.Get("/courses", adminHandler.Courses)
	adminRoutes.Post("/courses", adminHandler.CreateCourse)
	adminRoutes.Patch("/courses/:course_id", adminHandler.UpdateCourse)
	adminRoutes.Put("/courses/:course_id", adminHandler.UpdateCourse)
	adminRoutes.Delete("/courses/:course_id", adminHandler.DeleteCourse)
	adminRoutes.Get("/users", adminHandler.Users)

	// Платежи.
	apiV1.Post("/payments/initiate", paymentHandler.Initiate)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
