package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/domain"
	backendPort "nclexfront/internal/frontend/ports/backend"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodAdminCourses = "AdminCourses"
	LogMethodCreateCourse = "CreateCourse"
	LogMethodUploadCourse = "UploadCourse"
	LogMethodUpdateCourse = "UpdateCourse"
	LogMethodDeleteCourse = "DeleteCourse"
	LogMethodAdminUsers   = "AdminUsers"

	ErrorFailedToListAdminCourses = "failed to list admin courses"
	ErrorFailedToCreateCourse     = "failed to create course"
	ErrorFailedToUpdateCourse     = "failed to update course"
	ErrorFailedToDeleteCourse     = "failed to delete course"
	ErrorFailedToListAdminUsers   = "failed to list users"
)

// Пути административных эндпоинтов.
const (
	pathAdminCourses = "/api/admin/courses/"
	pathAdminUsers   = "/api/admin/users/"
)

// Courses возвращает курсы для административной консоли.
func (c *Client) Courses(ctx context.Context, store credentials.Store) ([]domain.Course, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodAdminCourses))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodGet,
		Path:   pathAdminCourses,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToListAdminCourses, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var courses []domain.Course
	if err := decodeJSON(resp.Body, &courses); err != nil {
		log.Error(ctx, ErrorFailedToListAdminCourses, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListAdminCourses, err)
	}

	return courses, nil
}

// CreateCourse создает курс с внешней ссылкой на видео.
func (c *Client) CreateCourse(ctx context.Context, store credentials.Store, params backendPort.CourseParams) (*domain.Course, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodCreateCourse))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodPost,
		Path:   pathAdminCourses,
		JSON:   params,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToCreateCourse, zap.Error(err))
		return nil, err
	}

	return decodeCourse(ctx, resp, ErrorFailedToCreateCourse)
}

// UploadCourse создает курс с загрузкой видеофайла. Тело и Content-Type
// с multipart boundary передаются бекенду без изменений: boundary знает
// только сторона, собравшая форму.
func (c *Client) UploadCourse(ctx context.Context, store credentials.Store, contentType string, body io.Reader) (*domain.Course, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodUploadCourse))

	resp, err := c.Do(ctx, store, Request{
		Method:      http.MethodPost,
		Path:        pathAdminCourses,
		Body:        body,
		ContentType: contentType,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToCreateCourse, zap.Error(err))
		return nil, err
	}

	return decodeCourse(ctx, resp, ErrorFailedToCreateCourse)
}

// UpdateCourse обновляет поля курса.
func (c *Client) UpdateCourse(ctx context.Context, store credentials.Store, courseID string, params backendPort.CourseParams) (*domain.Course, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodUpdateCourse), zap.String("course_id", courseID))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodPut,
		Path:   pathAdminCourses + courseID,
		JSON:   params,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToUpdateCourse, zap.Error(err))
		return nil, err
	}

	return decodeCourse(ctx, resp, ErrorFailedToUpdateCourse)
}

// DeleteCourse удаляет курс.
func (c *Client) DeleteCourse(ctx context.Context, store credentials.Store, courseID string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodDeleteCourse), zap.String("course_id", courseID))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodDelete,
		Path:   pathAdminCourses + courseID,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToDeleteCourse, zap.Error(err))
		return err
	}

	if !resp.Success() {
		return Classify(resp.StatusCode, resp.Body)
	}

	return nil
}

// Users возвращает сводки пользователей для административной консоли.
func (c *Client) Users(ctx context.Context, store credentials.Store) ([]domain.User, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodAdminUsers))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodGet,
		Path:   pathAdminUsers,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToListAdminUsers, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var users []domain.User
	if err := decodeJSON(resp.Body, &users); err != nil {
		log.Error(ctx, ErrorFailedToListAdminUsers, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListAdminUsers, err)
	}

	return users, nil
}

// decodeCourse разбирает ответ бекенда с одним курсом.
func decodeCourse(ctx context.Context, resp *Response, errMsg string) (*domain.Course, error) {
	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var course domain.Course
	if err := decodeJSON(resp.Body, &course); err != nil {
		logger.Log(ctx).Error(ctx, errMsg, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	return &course, nil
}
