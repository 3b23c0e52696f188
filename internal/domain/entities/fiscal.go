package entities

import "time"

// FiscalDocumentType is the Brazilian fiscal document kind the shop can
// issue. Numbering and tax calculation are stubbed; there is no
// government API integration.
type FiscalDocumentType string

const (
	FiscalDocumentNFe  FiscalDocumentType = "NF-e"
	FiscalDocumentNFCe FiscalDocumentType = "NFC-e"
	FiscalDocumentNFSe FiscalDocumentType = "NFS-e"
)

func (t FiscalDocumentType) Valid() bool {
	switch t {
	case FiscalDocumentNFe, FiscalDocumentNFCe, FiscalDocumentNFSe:
		return true
	}
	return false
}

type FiscalDocumentStatus string

const (
	FiscalDocumentStatusEmitida   FiscalDocumentStatus = "Emitida"
	FiscalDocumentStatusCancelada FiscalDocumentStatus = "Cancelada"
)

// DocumentLine is a billed line inside a fiscal document. Service lines
// carry Quantity 1.
type DocumentLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// FiscalDocument is an issued NF-e/NFC-e/NFS-e record.
//
// Value is derived from the lines with the same reducer arithmetic as
// the order total and is never edited directly.
type FiscalDocument struct {
	ID               string               `json:"id"`
	Number           string               `json:"number"`
	Type             FiscalDocumentType   `json:"type"`
	Date             string               `json:"date"`
	CustomerName     string               `json:"customer_name"`
	CustomerDocument string               `json:"customer_document"`
	VehicleID        int64                `json:"vehicle_id,omitempty"`
	OrderID          string               `json:"order_id,omitempty"`
	Value            float64              `json:"value"`
	Status           FiscalDocumentStatus `json:"status"`
	Items            []DocumentLine       `json:"items"`
	Services         []DocumentLine       `json:"services"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}
