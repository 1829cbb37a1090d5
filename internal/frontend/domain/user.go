package domain

// User представляет профиль пользователя, полученный от бекенда.
type User struct {
	ID                   string  `json:"id"`
	Email                string  `json:"email"`
	FullName             string  `json:"full_name,omitempty"`
	Role                 string  `json:"role"`
	IsDeletionPending    bool    `json:"is_deletion_pending,omitempty"`
	DeletionScheduledFor *string `json:"deletion_scheduled_for,omitempty"`
}

// Роли пользователей, известные фронтенду.
const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

// IsAdmin сообщает, имеет ли пользователь административную роль.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
