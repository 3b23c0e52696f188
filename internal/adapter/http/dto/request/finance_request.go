package request

import "encoding/json"

type CreatePayableRequest struct {
	Description   string  `json:"description" binding:"required"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount" binding:"required"`
	DueDate       string  `json:"due_date" binding:"required"`
	PaymentMethod string  `json:"payment_method"`
	Reference     string  `json:"reference"`
}

type CreateReceivableRequest struct {
	Description   string  `json:"description" binding:"required"`
	Customer      string  `json:"customer"`
	Amount        float64 `json:"amount" binding:"required"`
	DueDate       string  `json:"due_date" binding:"required"`
	PaymentMethod string  `json:"payment_method"`
	Reference     string  `json:"reference"`
}

// SettleReceivableRequest wraps the payment provider payload.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying
// Mercado Pago schemas.
type SettleReceivableRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
