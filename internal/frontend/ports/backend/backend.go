// Package backend определяет интерфейсы типизированного клиента удаленного REST бекенда.
package backend

import (
	"context"
	"io"

	"nclexfront/internal/frontend/domain"
	"nclexfront/internal/frontend/ports/credentials"
)

// AuthAPI покрывает операции аутентификации бекенда.
type AuthAPI interface {
	Register(ctx context.Context, params RegisterParams) (*RegisterResult, error)

	// Login выполняет вход. При включенной 2FA без кода бекенд отвечает
	// 400 с requires_2fa=true - это не ошибка, а результат с Requires2FA.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// Logout отзывает refresh-токен на бекенде. Вызов best-effort:
	// локальная очистка учетных данных выполняется независимо от результата.
	Logout(ctx context.Context, store credentials.Store) error
}

// UsersAPI покрывает операции с профилем пользователя.
type UsersAPI interface {
	Profile(ctx context.Context, store credentials.Store) (*domain.User, error)
	UpdateProfile(ctx context.Context, store credentials.Store, fields map[string]any) (*domain.User, error)
}

// SecurityAPI покрывает управление двухфакторной аутентификацией и паролями.
type SecurityAPI interface {
	TwoFactorStatus(ctx context.Context, store credentials.Store) (*TwoFactorStatus, error)

	// EnableTwoFactor начинает настройку 2FA: бекенд выдает секрет и QR-код,
	// привязка происходит только после ConfirmTwoFactor с валидным кодом.
	EnableTwoFactor(ctx context.Context, store credentials.Store) (*TwoFactorSetup, error)
	ConfirmTwoFactor(ctx context.Context, store credentials.Store, token string) (string, error)

	// DisableTwoFactor требует текущий пароль и действующий код 2FA.
	DisableTwoFactor(ctx context.Context, store credentials.Store, password, token string) (string, error)

	GenerateBackupCodes(ctx context.Context, store credentials.Store) (*BackupCodes, error)
	RegenerateBackupCodes(ctx context.Context, store credentials.Store, token string) (*BackupCodes, error)

	// ChangePassword меняет пароль; бекенд отзывает все refresh-токены
	// пользователя, так что сохраненная пара становится недействительной.
	ChangePassword(ctx context.Context, store credentials.Store, params ChangePasswordParams) (string, error)

	// ForgotPassword и ResetPassword - публичные операции восстановления:
	// выполняются без сохраненных учетных данных.
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, params ResetPasswordParams) (string, error)
}

// CoursesAPI покрывает каталог курсов и прогресс обучения.
type CoursesAPI interface {
	List(ctx context.Context, store credentials.Store) ([]domain.Course, error)
	ListProgress(ctx context.Context, store credentials.Store) ([]domain.CourseProgress, error)
	Progress(ctx context.Context, store credentials.Store, courseID string) (*domain.CourseProgress, error)
	SetProgress(ctx context.Context, store credentials.Store, courseID string, percentage int) (*domain.CourseProgress, error)
}

// MessagesAPI покрывает переписку между пользователями.
type MessagesAPI interface {
	Conversations(ctx context.Context, store credentials.Store) ([]domain.Conversation, error)
	Thread(ctx context.Context, store credentials.Store, userID string) ([]domain.Message, error)
	Send(ctx context.Context, store credentials.Store, receiverID, content string) (*domain.Message, error)
}

// AdminAPI покрывает административные операции.
type AdminAPI interface {
	Courses(ctx context.Context, store credentials.Store) ([]domain.Course, error)

	// CreateCourse создает курс с внешней ссылкой на видео (JSON).
	CreateCourse(ctx context.Context, store credentials.Store, params CourseParams) (*domain.Course, error)

	// UploadCourse создает курс с загрузкой видеофайла. Тело и Content-Type
	// (с multipart boundary) передаются бекенду без изменений.
	UploadCourse(ctx context.Context, store credentials.Store, contentType string, body io.Reader) (*domain.Course, error)

	UpdateCourse(ctx context.Context, store credentials.Store, courseID string, params CourseParams) (*domain.Course, error)
	DeleteCourse(ctx context.Context, store credentials.Store, courseID string) error
	Users(ctx context.Context, store credentials.Store) ([]domain.User, error)
}

// PaymentsAPI покрывает платежные операции.
type PaymentsAPI interface {
	Initiate(ctx context.Context, store credentials.Store, params PaymentParams) (*domain.PaymentReceipt, error)
}
