package response

import (
	"time"

	"oficina_api/internal/domain/entities"
)

type PayableResponse struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	DueDate       string    `json:"due_date"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Reference     string    `json:"reference,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromPayable(p entities.Payable) PayableResponse {
	return PayableResponse{
		ID:            p.ID,
		Description:   p.Description,
		Category:      p.Category,
		Amount:        p.Amount,
		DueDate:       p.DueDate,
		Status:        string(p.Status),
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromPayables(payables []entities.Payable) []PayableResponse {
	out := make([]PayableResponse, 0, len(payables))
	for _, p := range payables {
		out = append(out, FromPayable(p))
	}
	return out
}

type ReceivableResponse struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Customer      string    `json:"customer"`
	Amount        float64   `json:"amount"`
	DueDate       string    `json:"due_date"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Reference     string    `json:"reference,omitempty"`
	OrderID       string    `json:"order_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromReceivable(r entities.Receivable) ReceivableResponse {
	return ReceivableResponse{
		ID:            r.ID,
		Description:   r.Description,
		Customer:      r.Customer,
		Amount:        r.Amount,
		DueDate:       r.DueDate,
		Status:        string(r.Status),
		PaymentMethod: r.PaymentMethod,
		Reference:     r.Reference,
		OrderID:       r.OrderID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromReceivables(receivables []entities.Receivable) []ReceivableResponse {
	out := make([]ReceivableResponse, 0, len(receivables))
	for _, r := range receivables {
		out = append(out, FromReceivable(r))
	}
	return out
}

type PaymentResponse struct {
	ID           string    `json:"id"`
	ReceivableID string    `json:"receivable_id"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		ReceivableID:       p.ReceivableID,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

type CashFlowEntryResponse struct {
	Month   string  `json:"month"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	Balance float64 `json:"balance"`
}

func FromCashFlow(entries []entities.CashFlowEntry) []CashFlowEntryResponse {
	out := make([]CashFlowEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, CashFlowEntryResponse{
			Month:   e.Month,
			Inflow:  e.Inflow,
			Outflow: e.Outflow,
			Balance: e.Balance,
		})
	}
	return out
}
