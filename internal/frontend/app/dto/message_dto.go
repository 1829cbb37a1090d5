package dto

// SendMessageRequest содержит данные для отправки сообщения.
type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}
