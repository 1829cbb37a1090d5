package domain

import "time"

// Conversation представляет собеседника в списке диалогов.
type Conversation struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email"`
}

// Message представляет одно сообщение в диалоге.
type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
