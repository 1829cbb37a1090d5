package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/domain"
	backendPort "nclexfront/internal/frontend/ports/backend"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogDashboardLoaded = "dashboard loaded"
	LogProgressSaved   = "course progress saved"

	ErrorFailedToListCourses  = "failed to list courses"
	ErrorFailedToListProgress = "failed to list progress"
	ErrorFailedToGetProgress  = "failed to get course progress"
	ErrorFailedToSetProgress  = "failed to set course progress"
)

// CourseServiceImpl реализует services.CourseService поверх клиента бекенда.
type CourseServiceImpl struct {
	courses backendPort.CoursesAPI
}

// NewCourseService создает новый экземпляр CourseServiceImpl.
func NewCourseService(courses backendPort.CoursesAPI) *CourseServiceImpl {
	return &CourseServiceImpl{courses: courses}
}

// Dashboard возвращает каталог курсов вместе с прогрессом пользователя.
// Каталог обязателен; недоступный прогресс не валит весь дашборд, кроме
// случая истекшей сессии.
func (s *CourseServiceImpl) Dashboard(ctx context.Context, store credentials.Store) (*dto.DashboardResponse, error) {
	log := logger.Log(ctx)

	courses, err := s.courses.List(ctx, store)
	if err != nil {
		log.Debug(ctx, ErrorFailedToListCourses, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListCourses, err)
	}

	progress, err := s.courses.ListProgress(ctx, store)
	if err != nil {
		if apiErr, ok := domain.AsAPIError(err); ok && apiErr.Kind == domain.KindAuthExpired {
			return nil, fmt.Errorf("%s: %w", ErrorFailedToListProgress, err)
		}
		log.Warn(ctx, ErrorFailedToListProgress, zap.Error(err))
		progress = nil
	}

	log.Debug(ctx, LogDashboardLoaded, zap.Int("courses", len(courses)))

	return &dto.DashboardResponse{Courses: courses, Progress: progress}, nil
}

// Courses возвращает каталог курсов.
func (s *CourseServiceImpl) Courses(ctx context.Context, store credentials.Store) ([]domain.Course, error) {
	courses, err := s.courses.List(ctx, store)
	if err != nil {
		logger.Log(ctx).Debug(ctx, ErrorFailedToListCourses, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListCourses, err)
	}

	return courses, nil
}

// Progress возвращает прогресс пользователя по курсу.
func (s *CourseServiceImpl) Progress(ctx context.Context, store credentials.Store, courseID string) (*domain.CourseProgress, error) {
	progress, err := s.courses.Progress(ctx, store, courseID)
	if err != nil {
		logger.Log(ctx).Debug(ctx, ErrorFailedToGetProgress, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGetProgress, err)
	}

	return progress, nil
}

// SetProgress сохраняет прогресс пользователя по курсу.
func (s *CourseServiceImpl) SetProgress(ctx context.Context, store credentials.Store, courseID string, percentage int) (*domain.CourseProgress, error) {
	log := logger.Log(ctx)

	progress, err := s.courses.SetProgress(ctx, store, courseID, percentage)
	if err != nil {
		log.Debug(ctx, ErrorFailedToSetProgress, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToSetProgress, err)
	}

	log.Info(ctx, LogProgressSaved,
		zap.String("course_id", courseID),
		zap.Int("percentage", percentage))

	return progress, nil
}
