package backend

import "nclexfront/internal/frontend/domain"

// RegisterParams содержит данные для регистрации пользователя.
type RegisterParams struct {
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// RegisterResult содержит ответ бекенда на регистрацию.
type RegisterResult struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
}

// LoginParams содержит данные для входа. TwoFactorToken и BackupCode
// взаимозаменяемы при включенной 2FA.
type LoginParams struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	TwoFactorToken string `json:"two_factor_token,omitempty"`
	BackupCode     string `json:"backup_code,omitempty"`
}

// LoginResult содержит результат входа. При Requires2FA токены отсутствуют:
// бекенд ждет повторного вызова с кодом двухфакторной аутентификации.
type LoginResult struct {
	Requires2FA bool
	Message     string
	Warning     string
	Pair        domain.CredentialPair
	User        *domain.User
}

// TwoFactorStatus содержит текущее состояние 2FA пользователя.
type TwoFactorStatus struct {
	Enabled          bool `json:"enabled"`
	BackupCodesCount int  `json:"backup_codes_count"`
}

// TwoFactorSetup содержит материалы для привязки аутентификатора.
// Secret и ManualEntryKey совпадают: секрет можно ввести вручную
// вместо сканирования QR-кода.
type TwoFactorSetup struct {
	Secret         string `json:"secret"`
	QRCode         string `json:"qr_code"`
	ManualEntryKey string `json:"manual_entry_key"`
	Issuer         string `json:"issuer"`
	AccountName    string `json:"account_name"`
	Message        string `json:"message"`
}

// BackupCodes содержит свежевыданные резервные коды. Коды показываются
// один раз: бекенд хранит только их хэши.
type BackupCodes struct {
	BackupCodes []string `json:"backup_codes"`
	Message     string   `json:"message"`
	Warning     string   `json:"warning,omitempty"`
}

// ChangePasswordParams содержит данные для смены пароля.
type ChangePasswordParams struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// ResetPasswordParams содержит данные для завершения восстановления пароля
// по токену из письма.
type ResetPasswordParams struct {
	Token              string `json:"token"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// CourseParams содержит поля курса для создания или обновления.
type CourseParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url,omitempty"`
}

// PaymentParams содержит данные для инициации платежа.
type PaymentParams struct {
	PaymentMethod string         `json:"payment_method"`
	CardDetails   map[string]any `json:"card_details"`
	Amount        string         `json:"amount"`
	Currency      string         `json:"currency"`
}
