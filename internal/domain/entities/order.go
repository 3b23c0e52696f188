package entities

import "time"

// OrderType is the kind of work a service order covers.
type OrderType string

const (
	OrderTypeManutencao  OrderType = "Manutenção"
	OrderTypeReparo      OrderType = "Reparo"
	OrderTypeRevisao     OrderType = "Revisão"
	OrderTypeDiagnostico OrderType = "Diagnóstico"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeManutencao, OrderTypeReparo, OrderTypeRevisao, OrderTypeDiagnostico:
		return true
	}
	return false
}

// OrderStatus tracks the shop-floor progress of a service order.
type OrderStatus string

const (
	OrderStatusAgendado    OrderStatus = "Agendado"
	OrderStatusEmAndamento OrderStatus = "Em andamento"
	OrderStatusConcluido   OrderStatus = "Concluído"
	OrderStatusAguardando  OrderStatus = "Aguardando aprovação"
	OrderStatusCancelado   OrderStatus = "Cancelado"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusAgendado, OrderStatusEmAndamento, OrderStatusConcluido, OrderStatusAguardando, OrderStatusCancelado:
		return true
	}
	return false
}

// OrderLaborLine is a labor selection snapshotted into a submitted
// order. Price is captured at submission time; later catalog edits do
// not rewrite history.
type OrderLaborLine struct {
	LaborID   int64   `json:"labor_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderInventoryLine is a parts selection snapshotted into a submitted
// order.
type OrderInventoryLine struct {
	ItemID       int64   `json:"item_id"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unit_price"`
	UsedQuantity int     `json:"used_quantity"`
}

// ServiceOrder is the finalized order record handed to persistence when
// a draft is submitted.
type ServiceOrder struct {
	ID             string               `json:"id"`
	Date           string               `json:"date"`
	VehicleID      int64                `json:"vehicle_id"`
	Type           OrderType            `json:"type"`
	Description    string               `json:"description,omitempty"`
	Status         OrderStatus          `json:"status"`
	TotalCost      float64              `json:"total_cost"`
	LaborLines     []OrderLaborLine     `json:"labor_lines"`
	InventoryLines []OrderInventoryLine `json:"inventory_lines"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}
