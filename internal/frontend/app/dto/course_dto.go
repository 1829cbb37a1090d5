package dto

import "nclexfront/internal/frontend/domain"

// DashboardResponse объединяет каталог курсов и прогресс пользователя.
type DashboardResponse struct {
	Courses  []domain.Course         `json:"courses"`
	Progress []domain.CourseProgress `json:"progress"`
}

// ProgressUpdateRequest содержит новый процент прохождения курса.
type ProgressUpdateRequest struct {
	ProgressPercentage int `json:"progress_percentage"`
}
