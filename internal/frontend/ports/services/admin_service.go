package services

import (
	"context"
	"io"

	"nclexfront/internal/frontend/app/dto"
	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
)

// AdminService определяет операции административной консоли.
type AdminService interface {
	Courses(ctx context.Context, store credentials.Store) ([]domain.Course, error)
	CreateCourse(ctx context.Context, store credentials.Store, req *dto.CourseRequest) (*domain.Course, error)
	UploadCourse(ctx context.Context, store credentials.Store, contentType string, body io.Reader) (*domain.Course, error)
	UpdateCourse(ctx context.Context, store credentials.Store, courseID string, req *dto.CourseRequest) (*domain.Course, error)
	DeleteCourse(ctx context.Context, store credentials.Store, courseID string) error
	Users(ctx context.Context, store credentials.Store) ([]domain.User, error)
}
