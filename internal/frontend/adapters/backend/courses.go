package backend

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodListCourses  = "ListCourses"
	LogMethodListProgress = "ListProgress"
	LogMethodGetProgress  = "GetProgress"
	LogMethodSetProgress  = "SetProgress"

	ErrorFailedToListCourses  = "failed to list courses"
	ErrorFailedToListProgress = "failed to list course progress"
	ErrorFailedToGetProgress  = "failed to get course progress"
	ErrorFailedToSetProgress  = "failed to set course progress"
)

// Пути эндпоинтов курсов и прогресса.
const (
	pathCourses  = "/api/courses/"
	pathProgress = "/api/users/me/progress/"
)

// List возвращает каталог курсов.
func (c *Client) List(ctx context.Context, store credentials.Store) ([]domain.Course, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodListCourses))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodGet,
		Path:   pathCourses,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToListCourses, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var courses []domain.Course
	if err := decodeJSON(resp.Body, &courses); err != nil {
		log.Error(ctx, ErrorFailedToListCourses, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListCourses, err)
	}

	return courses, nil
}

// ListProgress возвращает прогресс пользователя по всем курсам.
func (c *Client) ListProgress(ctx context.Context, store credentials.Store) ([]domain.CourseProgress, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodListProgress))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodGet,
		Path:   pathProgress,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToListProgress, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var progress []domain.CourseProgress
	if err := decodeJSON(resp.Body, &progress); err != nil {
		log.Error(ctx, ErrorFailedToListProgress, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListProgress, err)
	}

	return progress, nil
}

// Progress возвращает прогресс пользователя по одному курсу.
func (c *Client) Progress(ctx context.Context, store credentials.Store, courseID string) (*domain.CourseProgress, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGetProgress), zap.String("course_id", courseID))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodGet,
		Path:   pathProgress + courseID,
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToGetProgress, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var progress domain.CourseProgress
	if err := decodeJSON(resp.Body, &progress); err != nil {
		log.Error(ctx, ErrorFailedToGetProgress, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGetProgress, err)
	}

	return &progress, nil
}

// SetProgress записывает процент прохождения курса.
// Отметку completed_at при пересечении границы в 100 процентов ставит и
// снимает бекенд; ответ передается без изменений.
func (c *Client) SetProgress(ctx context.Context, store credentials.Store, courseID string, percentage int) (*domain.CourseProgress, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSetProgress), zap.String("course_id", courseID))

	resp, err := c.Do(ctx, store, Request{
		Method: http.MethodPut,
		Path:   pathProgress + courseID,
		JSON:   map[string]int{"progress_percentage": percentage},
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToSetProgress, zap.Error(err))
		return nil, err
	}

	if !resp.Success() {
		return nil, Classify(resp.StatusCode, resp.Body)
	}

	var progress domain.CourseProgress
	if err := decodeJSON(resp.Body, &progress); err != nil {
		log.Error(ctx, ErrorFailedToSetProgress, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToSetProgress, err)
	}

	return &progress, nil
}
