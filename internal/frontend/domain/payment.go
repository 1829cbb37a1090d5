package domain

// PaymentReceipt представляет результат инициации платежа.
type PaymentReceipt struct {
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}
