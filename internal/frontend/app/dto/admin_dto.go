package dto

// CourseRequest содержит поля курса для создания или обновления через JSON.
// Загрузка видеофайла идет отдельным multipart запросом.
type CourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url,omitempty"`
}
