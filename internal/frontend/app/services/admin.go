package services

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/domain"
	backendPort "nclexfront/internal/frontend/ports/backend"
	"nclexfront/internal/frontend/ports/credentials"
	"nclexfront/pkg/logger"
)

// Константы для логирования.
const (
	LogCourseCreated = "course created"
	LogCourseUpdated = "course updated"
	LogCourseDeleted = "course deleted"

	ErrorFailedToListAdminCourses = "failed to list admin courses"
	ErrorFailedToCreateCourse     = "failed to create course"
	ErrorFailedToUploadCourse     = "failed to upload course"
	ErrorFailedToUpdateCourse     = "failed to update course"
	ErrorFailedToDeleteCourse     = "failed to delete course"
	ErrorFailedToListUsers        = "failed to list users"
)

// AdminServiceImpl реализует services.AdminService поверх клиента бекенда.
// Проверка роли выполняется в HTTP-слое; бекенд проверяет права повторно.
type AdminServiceImpl struct {
	admin backendPort.AdminAPI
}

// NewAdminService создает новый экземпляр AdminServiceImpl.
func NewAdminService(admin backendPort.AdminAPI) *AdminServiceImpl {
	return &AdminServiceImpl{admin: admin}
}

// Courses возвращает список курсов для административной консоли.
func (s *AdminServiceImpl) Courses(ctx context.Context, store credentials.Store) ([]domain.Course, error) {
	courses, err := s.admin.Courses(ctx, store)
	if err != nil {
		logger.Log(ctx).Debug(ctx, ErrorFailedToListAdminCourses, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListAdminCourses, err)
	}

	return courses, nil
}

// CreateCourse создает курс с внешней ссылкой на видео.
func (s *AdminServiceImpl) CreateCourse(ctx context.Context, store credentials.Store, req *dto.CourseRequest) (*domain.Course, error) {
	log := logger.Log(ctx)

	course, err := s.admin.CreateCourse(ctx, store, backendPort.CourseParams{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		log.Debug(ctx, ErrorFailedToCreateCourse, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToCreateCourse, err)
	}

	log.Info(ctx, LogCourseCreated, zap.String("course_id", course.ID))

	return course, nil
}

// UploadCourse создает курс с загрузкой видеофайла. Multipart-тело запроса
// передается бекенду без изменений.
func (s *AdminServiceImpl) UploadCourse(ctx context.Context, store credentials.Store, contentType string, body io.Reader) (*domain.Course, error) {
	log := logger.Log(ctx)

	course, err := s.admin.UploadCourse(ctx, store, contentType, body)
	if err != nil {
		log.Debug(ctx, ErrorFailedToUploadCourse, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToUploadCourse, err)
	}

	log.Info(ctx, LogCourseCreated, zap.String("course_id", course.ID))

	return course, nil
}

// UpdateCourse обновляет курс.
func (s *AdminServiceImpl) UpdateCourse(ctx context.Context, store credentials.Store, courseID string, req *dto.CourseRequest) (*domain.Course, error) {
	log := logger.Log(ctx)

	course, err := s.admin.UpdateCourse(ctx, store, courseID, backendPort.CourseParams{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		log.Debug(ctx, ErrorFailedToUpdateCourse, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToUpdateCourse, err)
	}

	log.Info(ctx, LogCourseUpdated, zap.String("course_id", courseID))

	return course, nil
}

// DeleteCourse удаляет курс.
func (s *AdminServiceImpl) DeleteCourse(ctx context.Context, store credentials.Store, courseID string) error {
	log := logger.Log(ctx)

	if err := s.admin.DeleteCourse(ctx, store, courseID); err != nil {
		log.Debug(ctx, ErrorFailedToDeleteCourse, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDeleteCourse, err)
	}

	log.Info(ctx, LogCourseDeleted, zap.String("course_id", courseID))

	return nil
}

// Users возвращает список пользователей для административной консоли.
func (s *AdminServiceImpl) Users(ctx context.Context, store credentials.Store) ([]domain.User, error) {
	users, err := s.admin.Users(ctx, store)
	if err != nil {
		logger.Log(ctx).Debug(ctx, ErrorFailedToListUsers, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToListUsers, err)
	}

	return users, nil
}
