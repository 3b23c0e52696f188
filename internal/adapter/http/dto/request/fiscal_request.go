package request

import "oficina_api/internal/usecase"

type DocumentItemRequest struct {
	ItemID   int64 `json:"item_id" binding:"required"`
	Quantity int   `json:"quantity"`
}

type DocumentServiceRequest struct {
	LaborID int64 `json:"labor_id" binding:"required"`
}

// IssueDocumentRequest is the payload for fiscal document emission.
// When OrderID is set the lines come from the submitted order and the
// item/service lists are ignored.
type IssueDocumentRequest struct {
	Type             string                   `json:"type" binding:"required"`
	CustomerName     string                   `json:"customer_name" binding:"required"`
	CustomerDocument string                   `json:"customer_document" binding:"required"`
	VehicleID        int64                    `json:"vehicle_id"`
	OrderID          string                   `json:"order_id"`
	Items            []DocumentItemRequest    `json:"items"`
	Services         []DocumentServiceRequest `json:"services"`
}

func (r IssueDocumentRequest) ToInput() usecase.IssueDocumentInput {
	items := make([]usecase.DocumentItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.DocumentItemInput{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	services := make([]usecase.DocumentServiceInput, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, usecase.DocumentServiceInput{LaborID: s.LaborID})
	}
	return usecase.IssueDocumentInput{
		Type:             r.Type,
		CustomerName:     r.CustomerName,
		CustomerDocument: r.CustomerDocument,
		VehicleID:        r.VehicleID,
		OrderID:          r.OrderID,
		Items:            items,
		Services:         services,
	}
}
