package dto

// TwoFactorStatusResponse содержит состояние 2FA текущего пользователя.
type TwoFactorStatusResponse struct {
	Enabled          bool `json:"enabled"`
	BackupCodesCount int  `json:"backup_codes_count"`
}

// TwoFactorSetupResponse содержит материалы для привязки аутентификатора.
type TwoFactorSetupResponse struct {
	Secret         string `json:"secret"`
	QRCode         string `json:"qr_code"`
	ManualEntryKey string `json:"manual_entry_key"`
	Issuer         string `json:"issuer"`
	AccountName    string `json:"account_name"`
	Message        string `json:"message,omitempty"`
}

// TwoFactorConfirmRequest содержит код подтверждения настройки 2FA.
type TwoFactorConfirmRequest struct {
	Token string `json:"token"`
}

// TwoFactorDisableRequest содержит пароль и код для выключения 2FA.
type TwoFactorDisableRequest struct {
	Password string `json:"password"`
	Token    string `json:"token"`
}

// BackupCodesResponse содержит свежевыданные резервные коды.
type BackupCodesResponse struct {
	BackupCodes []string `json:"backup_codes"`
	Message     string   `json:"message,omitempty"`
	Warning     string   `json:"warning,omitempty"`
}

// ChangePasswordRequest содержит данные для смены пароля.
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// ForgotPasswordRequest содержит адрес для восстановления пароля.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest содержит токен из письма и новый пароль.
type ResetPasswordRequest struct {
	Token              string `json:"token"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// MessageResponse содержит подтверждающее сообщение бекенда.
type MessageResponse struct {
	Message string `json:"message"`
}
