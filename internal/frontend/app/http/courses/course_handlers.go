// Package courses содержит HTTP обработчики каталога курсов и прогресса обучения.
package courses

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/app/http/httperr"
	"nclexfront/internal/frontend/app/http/middleware"
	"nclexfront/internal/frontend/ports/services"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerDashboard   = "course handler: dashboard"
	LogHandlerCourses     = "course handler: list courses"
	LogHandlerProgress    = "course handler: get progress"
	LogHandlerSetProgress = "course handler: set progress"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики курсов.
type Handler struct {
	courseService services.CourseService
}

// NewHandler создает новый экземпляр обработчика курсов.
func NewHandler(courseService services.CourseService) *Handler {
	return &Handler{
		courseService: courseService,
	}
}

// Dashboard обрабатывает запрос дашборда: каталог курсов с прогрессом.
func (h *Handler) Dashboard(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerDashboard)

	response, err := h.courseService.Dashboard(requestCtx, middleware.CredentialStore(ctx))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Courses обрабатывает запрос каталога курсов.
func (h *Handler) Courses(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerCourses)

	courses, err := h.courseService.Courses(requestCtx, middleware.CredentialStore(ctx))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(courses); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Progress обрабатывает запрос прогресса по курсу.
func (h *Handler) Progress(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerProgress)

	courseID := ctx.Params("course_id")
	if courseID == "" {
		return httperr.BadRequest(ctx, "course id is required")
	}

	progress, err := h.courseService.Progress(requestCtx, middleware.CredentialStore(ctx), courseID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(progress); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// SetProgress обрабатывает запрос на сохранение прогресса по курсу.
func (h *Handler) SetProgress(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSetProgress)

	courseID := ctx.Params("course_id")
	if courseID == "" {
		return httperr.BadRequest(ctx, "course id is required")
	}

	var req dto.ProgressUpdateRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.ProgressPercentage < 0 || req.ProgressPercentage > 100 {
		return httperr.BadRequest(ctx, "progress percentage must be between 0 and 100")
	}

	progress, err := h.courseService.SetProgress(requestCtx, middleware.CredentialStore(ctx), courseID, req.ProgressPercentage)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(progress); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
