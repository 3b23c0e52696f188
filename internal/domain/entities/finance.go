package entities

import (
	"encoding/json"
	"time"
)

// FinanceStatus tracks whether an account entry has been settled.
// Atrasado is derived (Pendente past its due date), never stored.
type FinanceStatus string

const (
	FinanceStatusPendente FinanceStatus = "Pendente"
	FinanceStatusPago     FinanceStatus = "Pago"
	FinanceStatusAtrasado FinanceStatus = "Atrasado"
)

// Payable is an account the shop owes (suppliers, rent, utilities,
// payroll).
type Payable struct {
	ID            string        `json:"id"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	Amount        float64       `json:"amount"`
	DueDate       string        `json:"due_date"`
	Status        FinanceStatus `json:"status"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Reference     string        `json:"reference,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Receivable is an account owed to the shop. Order submission creates
// one automatically, referencing the order; ad hoc entries are also
// allowed.
type Receivable struct {
	ID            string        `json:"id"`
	Description   string        `json:"description"`
	Customer      string        `json:"customer"`
	Amount        float64       `json:"amount"`
	DueDate       string        `json:"due_date"`
	Status        FinanceStatus `json:"status"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Reference     string        `json:"reference,omitempty"`
	OrderID       string        `json:"order_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// EffectiveStatus reports Atrasado for pending entries past their due
// date. today uses DateLayout.
func (r Receivable) EffectiveStatus(today string) FinanceStatus {
	if r.Status == FinanceStatusPendente && r.DueDate != "" && r.DueDate < today {
		return FinanceStatusAtrasado
	}
	return r.Status
}

func (p Payable) EffectiveStatus(today string) FinanceStatus {
	if p.Status == FinanceStatusPendente && p.DueDate != "" && p.DueDate < today {
		return FinanceStatusAtrasado
	}
	return p.Status
}

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// Payment is a settled receivable charge processed through the payment
// provider.
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.
type Payment struct {
	ID           string        `json:"id"`
	ReceivableID string        `json:"receivable_id"`
	Date         time.Time     `json:"date"`
	Status       PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

// CashFlowEntry is one month of aggregated settled movement.
type CashFlowEntry struct {
	Month   string  `json:"month"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	Balance float64 `json:"balance"`
}
