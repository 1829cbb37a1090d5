package backend

import (
	"encoding/json"
	"net/http"

	"nclexfront/internal/frontend/domain"
)

// errorPayload - форма тела ошибки, которую отдает бекенд.
// Ошибки по полям приходят либо в field_errors, либо в errors
// (сериализаторы бекенда используют второй ключ).
type errorPayload struct {
	Detail      string                     `json:"detail"`
	RetryAfter  int                        `json:"retry_after"`
	FieldErrors map[string]json.RawMessage `json:"field_errors"`
	Errors      map[string]json.RawMessage `json:"errors"`
}

// Classify превращает неуспешный ответ бекенда в классифицированную ошибку.
//
// Порядок проверки, первое совпадение выигрывает:
//  1. 429 -> RateLimited с retry_after из тела;
//  2. 423 -> Locked независимо от формы тела;
//  3. тело с картой ошибок по полям -> Validation;
//  4. иначе Generic с detail или фиксированным сообщением.
//
// Неразбираемое тело никогда не приводит к ошибке разбора - только к Generic.
func Classify(statusCode int, body []byte) *domain.APIError {
	var payload errorPayload
	parsed := json.Unmarshal(body, &payload) == nil

	message := domain.FallbackErrorMessage
	if parsed && payload.Detail != "" {
		message = payload.Detail
	}

	switch statusCode {
	case http.StatusTooManyRequests:
		return &domain.APIError{
			Kind:              domain.KindRateLimited,
			Message:           message,
			RetryAfterSeconds: payload.RetryAfter,
		}
	case http.StatusLocked:
		return &domain.APIError{
			Kind:    domain.KindLocked,
			Message: message,
		}
	}

	if parsed {
		if fields := normalizeFieldErrors(payload.FieldErrors); fields != nil {
			return &domain.APIError{
				Kind:        domain.KindValidation,
				Message:     message,
				FieldErrors: fields,
			}
		}
		if fields := normalizeFieldErrors(payload.Errors); fields != nil {
			return &domain.APIError{
				Kind:        domain.KindValidation,
				Message:     message,
				FieldErrors: fields,
			}
		}
	}

	return &domain.APIError{Kind: domain.KindGeneric, Message: message}
}

// normalizeFieldErrors приводит значения карты ошибок к спискам сообщений.
// Значение может быть строкой или списком строк.
func normalizeFieldErrors(raw map[string]json.RawMessage) map[string][]string {
	if len(raw) == 0 {
		return nil
	}

	fields := make(map[string][]string, len(raw))
	for name, value := range raw {
		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			fields[name] = list
			continue
		}

		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			fields[name] = []string{single}
			continue
		}

		fields[name] = []string{string(value)}
	}

	return fields
}
