package domain

import "time"

// Course представляет курс из каталога бекенда.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
}

// CourseProgress представляет прогресс пользователя по курсу.
// CompletedAt устанавливается и сбрасывается бекендом при достижении
// и потере отметки в 100 процентов.
type CourseProgress struct {
	CourseID           string     `json:"course_id,omitempty"`
	ProgressPercentage int        `json:"progress_percentage"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}
