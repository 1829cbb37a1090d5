package domain

import "errors"

// ErrorKind классифицирует ответ бекенда об ошибке.
type ErrorKind string

// Виды классифицированных ошибок.
const (
	// KindRateLimited - бекенд ограничил частоту запросов (статус 429).
	KindRateLimited ErrorKind = "rate_limited"
	// KindLocked - учетная запись временно заблокирована (статус 423).
	KindLocked ErrorKind = "locked"
	// KindValidation - бекенд вернул ошибки по отдельным полям формы.
	KindValidation ErrorKind = "validation"
	// KindAuthExpired - запрос получил 401, и обновление токена не помогло.
	KindAuthExpired ErrorKind = "authentication_expired"
	// KindGeneric - сетевая или неклассифицированная ошибка сервера.
	KindGeneric ErrorKind = "generic"
)

// Фиксированные сообщения для ошибок без детализации.
const (
	FallbackErrorMessage = "An unexpected error occurred."
	NetworkErrorMessage  = "Network error. Please check your connection and try again."
	SessionExpiredMsg    = "Your session has expired. Please log in again."
)

// ErrAuthenticationExpired сигнализирует, что 401 пережил попытку обновления токена.
// Терминальное состояние запроса: повторов больше не будет, учетные данные очищены.
var ErrAuthenticationExpired = errors.New("authentication expired")

// APIError - классифицированная ошибка бекенда.
// Слой представления никогда не видит сырые статус-коды, только эту форму.
type APIError struct {
	Kind              ErrorKind
	Message           string
	RetryAfterSeconds int
	FieldErrors       map[string][]string
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// NewGenericError создает ошибку вида Generic с заданным сообщением.
func NewGenericError(message string) *APIError {
	if message == "" {
		message = FallbackErrorMessage
	}
	return &APIError{Kind: KindGeneric, Message: message}
}

// NewNetworkError создает ошибку вида Generic для сетевого сбоя.
func NewNetworkError() *APIError {
	return &APIError{Kind: KindGeneric, Message: NetworkErrorMessage}
}

// NewAuthExpiredError создает терминальную ошибку истекшей сессии.
func NewAuthExpiredError() *APIError {
	return &APIError{Kind: KindAuthExpired, Message: SessionExpiredMsg}
}

// AsAPIError извлекает *APIError из цепочки ошибок.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
