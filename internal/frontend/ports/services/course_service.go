package services

import (
	"context"

	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
)

// CourseService определяет операции каталога курсов и прогресса обучения.
type CourseService interface {
	// Dashboard возвращает каталог курсов вместе с прогрессом пользователя.
	Dashboard(ctx context.Context, store credentials.Store) (*dto.DashboardResponse, error)

	Courses(ctx context.Context, store credentials.Store) ([]domain.Course, error)
	Progress(ctx context.Context, store credentials.Store, courseID string) (*domain.CourseProgress, error)
	SetProgress(ctx context.Context, store credentials.Store, courseID string, percentage int) (*domain.CourseProgress, error)
}
