// Package admin содержит HTTP обработчики административной консоли.
package admin

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

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
	LogHandlerCourses      = "admin handler: list courses"
	LogHandlerCreateCourse = "admin handler: create course"
	LogHandlerUpdateCourse = "admin handler: update course"
	LogHandlerDeleteCourse = "admin handler: delete course"
	LogHandlerUsers        = "admin handler: list users"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики административной консоли.
type Handler struct {
	adminService services.AdminService
}

// NewHandler создает новый экземпляр обработчика административной консоли.
func NewHandler(adminService services.AdminService) *Handler {
	return &Handler{
		adminService: adminService,
	}
}

// Courses обрабатывает запрос списка курсов.
func (h *Handler) Courses(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerCourses)

	courses, err := h.adminService.Courses(requestCtx, middleware.CredentialStore(ctx))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(courses); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// CreateCourse обрабатывает запрос на создание курса. Multipart запрос с
// видеофайлом передается бекенду без изменений, JSON запрос разбирается
// и валидируется на месте.
func (h *Handler) CreateCourse(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateCourse)

	contentType := ctx.Get(fiber.HeaderContentType)
	if strings.HasPrefix(contentType, "multipart/form-data") {
		course, err := h.adminService.UploadCourse(requestCtx, middleware.CredentialStore(ctx),
			contentType, bytes.NewReader(ctx.Body()))
		if err != nil {
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return httperr.Render(ctx, err)
		}

		if err := ctx.Status(http.StatusCreated).JSON(course); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}

	var req dto.CourseRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.Title == "" {
		return httperr.BadRequest(ctx, "title is required")
	}

	course, err := h.adminService.CreateCourse(requestCtx, middleware.CredentialStore(ctx), &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(course); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateCourse обрабатывает запрос на обновление курса.
func (h *Handler) UpdateCourse(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateCourse)

	courseID := ctx.Params("course_id")
	if courseID == "" {
		return httperr.BadRequest(ctx, "course id is required")
	}

	var req dto.CourseRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	course, err := h.adminService.UpdateCourse(requestCtx, middleware.CredentialStore(ctx), courseID, &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(course); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteCourse обрабатывает запрос на удаление курса.
func (h *Handler) DeleteCourse(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteCourse)

	courseID := ctx.Params("course_id")
	if courseID == "" {
		return httperr.BadRequest(ctx, "course id is required")
	}

	if err := h.adminService.DeleteCourse(requestCtx, middleware.CredentialStore(ctx), courseID); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "course deleted",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Users обрабатывает запрос списка пользователей.
func (h *Handler) Users(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerUsers)

	users, err := h.adminService.Users(requestCtx, middleware.CredentialStore(ctx))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Render(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(users); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
