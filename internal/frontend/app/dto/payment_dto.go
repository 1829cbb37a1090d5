package dto

// PaymentRequest содержит данные для инициации платежа.
type PaymentRequest struct {
	PaymentMethod string         `json:"payment_method"`
	CardDetails   map[string]any `json:"card_details"`
	Amount        string         `json:"amount"`
	Currency      string         `json:"currency"`
}
