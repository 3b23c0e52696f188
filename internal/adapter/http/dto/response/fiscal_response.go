package response

import (
	"time"

	"oficina_api/internal/domain/entities"
)

type DocumentLineResponse struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type FiscalDocumentResponse struct {
	ID               string                 `json:"id"`
	Number           string                 `json:"number"`
	Type             string                 `json:"type"`
	Date             string                 `json:"date"`
	CustomerName     string                 `json:"customer_name"`
	CustomerDocument string                 `json:"customer_document"`
	VehicleID        int64                  `json:"vehicle_id,omitempty"`
	OrderID          string                 `json:"order_id,omitempty"`
	Value            float64                `json:"value"`
	Status           string                 `json:"status"`
	Items            []DocumentLineResponse `json:"items"`
	Services         []DocumentLineResponse `json:"services"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func FromFiscalDocument(d entities.FiscalDocument) FiscalDocumentResponse {
	return FiscalDocumentResponse{
		ID:               d.ID,
		Number:           d.Number,
		Type:             string(d.Type),
		Date:             d.Date,
		CustomerName:     d.CustomerName,
		CustomerDocument: d.CustomerDocument,
		VehicleID:        d.VehicleID,
		OrderID:          d.OrderID,
		Value:            d.Value,
		Status:           string(d.Status),
		Items:            fromDocumentLines(d.Items),
		Services:         fromDocumentLines(d.Services),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func FromFiscalDocuments(docs []entities.FiscalDocument) []FiscalDocumentResponse {
	out := make([]FiscalDocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromFiscalDocument(d))
	}
	return out
}

func fromDocumentLines(lines []entities.DocumentLine) []DocumentLineResponse {
	out := make([]DocumentLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, DocumentLineResponse{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return out
}
