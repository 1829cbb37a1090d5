package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nclexfront/internal/frontend/app/services"
	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
)

type fakeCoursesAPI struct {
	courses     []domain.Course
	coursesErr  error
	progress    []domain.CourseProgress
	progressErr error
}

func (f *fakeCoursesAPI) List(_ context.Context, _ credentials.Store) ([]domain.Course, error) {
	return f.courses, f.coursesErr
}

func (f *fakeCoursesAPI) ListProgress(_ context.Context, _ credentials.Store) ([]domain.CourseProgress, error) {
	return f.progress, f.progressErr
}

func (f *fakeCoursesAPI) Progress(_ context.Context, _ credentials.Store, courseID string) (*domain.CourseProgress, error) {
	for i := range f.progress {
		if f.progress[i].CourseID == courseID {
			return &f.progress[i], nil
		}
	}
	return &domain.CourseProgress{CourseID: courseID}, f.progressErr
}

func (f *fakeCoursesAPI) SetProgress(_ context.Context, _ credentials.Store, courseID string, percentage int) (*domain.CourseProgress, error) {
	if f.progressErr != nil {
		return nil, f.progressErr
	}
	return &domain.CourseProgress{CourseID: courseID, ProgressPercentage: percentage}, nil
}

func TestCourseService_DashboardCombinesCoursesAndProgress(t *testing.T) {
	api := &fakeCoursesAPI{
		courses: []domain.Course{
			{ID: "c1", Title: "Pharmacology"},
			{ID: "c2", Title: "Fundamentals"},
		},
		progress: []domain.CourseProgress{
			{CourseID: "c1", ProgressPercentage: 40},
		},
	}
	svc := services.NewCourseService(api)

	resp, err := svc.Dashboard(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, resp.Courses, 2)
	assert.Len(t, resp.Progress, 1)
}

func TestCourseService_DashboardSurvivesProgressFailure(t *testing.T) {
	api := &fakeCoursesAPI{
		courses:     []domain.Course{{ID: "c1", Title: "Pharmacology"}},
		progressErr: domain.NewGenericError("progress unavailable"),
	}
	svc := services.NewCourseService(api)

	// Недоступный прогресс не прячет каталог.
	resp, err := svc.Dashboard(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, resp.Courses, 1)
	assert.Empty(t, resp.Progress)
}

func TestCourseService_DashboardFailsOnExpiredSession(t *testing.T) {
	api := &fakeCoursesAPI{
		courses:     []domain.Course{{ID: "c1"}},
		progressErr: domain.NewAuthExpiredError(),
	}
	svc := services.NewCourseService(api)

	_, err := svc.Dashboard(context.Background(), nil)

	require.Error(t, err)
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindAuthExpired, apiErr.Kind)
}

func TestCourseService_DashboardFailsWithoutCatalog(t *testing.T) {
	api := &fakeCoursesAPI{coursesErr: domain.NewNetworkError()}
	svc := services.NewCourseService(api)

	_, err := svc.Dashboard(context.Background(), nil)

	require.Error(t, err)
}

func TestCourseService_SetProgress(t *testing.T) {
	svc := services.NewCourseService(&fakeCoursesAPI{})

	progress, err := svc.SetProgress(context.Background(), nil, "c1", 75)

	require.NoError(t, err)
	assert.Equal(t, "c1", progress.CourseID)
	assert.Equal(t, 75, progress.ProgressPercentage)
}
