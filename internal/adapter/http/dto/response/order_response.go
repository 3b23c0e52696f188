package response

import (
	"time"

	"oficina_api/internal/domain/entities"
)

type DraftLaborLineResponse struct {
	LaborID   int64   `json:"labor_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

type DraftItemLineResponse struct {
	ItemID            int64   `json:"item_id"`
	Name              string  `json:"name"`
	UnitPrice         float64 `json:"unit_price"`
	UsedQuantity      int     `json:"used_quantity"`
	AvailableQuantity int     `json:"available_quantity"`
	Subtotal          float64 `json:"subtotal"`
}

// DraftResponse is the full draft view the form renders after every
// mutation. Total is recomputed server-side on each response.
type DraftResponse struct {
	ID          string                   `json:"id"`
	Date        string                   `json:"date"`
	VehicleID   int64                    `json:"vehicle_id"`
	Type        string                   `json:"type"`
	Description string                   `json:"description"`
	Status      string                   `json:"status"`
	Policy      string                   `json:"policy"`
	State       string                   `json:"state"`
	Labor       []DraftLaborLineResponse `json:"labor"`
	Items       []DraftItemLineResponse  `json:"items"`
	TotalCost   float64                  `json:"total_cost"`
	CreatedAt   time.Time                `json:"created_at"`
}

func FromDraft(d entities.OrderDraft) DraftResponse {
	labor := make([]DraftLaborLineResponse, 0, len(d.Labor))
	for _, l := range d.Labor {
		labor = append(labor, DraftLaborLineResponse{
			LaborID:   l.ID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
		})
	}
	items := make([]DraftItemLineResponse, 0, len(d.Items))
	for _, line := range d.Items {
		items = append(items, DraftItemLineResponse{
			ItemID:            line.Item.ID,
			Name:              line.Item.Name,
			UnitPrice:         line.Item.UnitPrice,
			UsedQuantity:      line.UsedQuantity,
			AvailableQuantity: line.Item.AvailableQuantity,
			Subtotal:          line.Item.UnitPrice * float64(line.UsedQuantity),
		})
	}
	return DraftResponse{
		ID:          d.ID,
		Date:        d.Date,
		VehicleID:   d.VehicleID,
		Type:        string(d.Type),
		Description: d.Description,
		Status:      string(d.Status),
		Policy:      string(d.Policy),
		State:       string(d.State),
		Labor:       labor,
		Items:       items,
		TotalCost:   d.Total(),
		CreatedAt:   d.CreatedAt,
	}
}

type OrderLaborLineResponse struct {
	LaborID   int64   `json:"labor_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderItemLineResponse struct {
	ItemID       int64   `json:"item_id"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unit_price"`
	UsedQuantity int     `json:"used_quantity"`
}

type OrderResponse struct {
	ID             string                   `json:"id"`
	Date           string                   `json:"date"`
	VehicleID      int64                    `json:"vehicle_id"`
	Type           string                   `json:"type"`
	Description    string                   `json:"description,omitempty"`
	Status         string                   `json:"status"`
	TotalCost      float64                  `json:"total_cost"`
	LaborLines     []OrderLaborLineResponse `json:"labor_lines"`
	InventoryLines []OrderItemLineResponse  `json:"inventory_lines"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

func FromOrder(o entities.ServiceOrder) OrderResponse {
	labor := make([]OrderLaborLineResponse, 0, len(o.LaborLines))
	for _, l := range o.LaborLines {
		labor = append(labor, OrderLaborLineResponse{
			LaborID:   l.LaborID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
		})
	}
	items := make([]OrderItemLineResponse, 0, len(o.InventoryLines))
	for _, p := range o.InventoryLines {
		items = append(items, OrderItemLineResponse{
			ItemID:       p.ItemID,
			Name:         p.Name,
			UnitPrice:    p.UnitPrice,
			UsedQuantity: p.UsedQuantity,
		})
	}
	return OrderResponse{
		ID:             o.ID,
		Date:           o.Date,
		VehicleID:      o.VehicleID,
		Type:           string(o.Type),
		Description:    o.Description,
		Status:         string(o.Status),
		TotalCost:      o.TotalCost,
		LaborLines:     labor,
		InventoryLines: items,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOrders(orders []entities.ServiceOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
