package response

import (
	"oficina_api/internal/domain/entities"
)

type VehicleResponse struct {
	ID          int64  `json:"id"`
	Plate       string `json:"plate"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Owner       string `json:"owner"`
	LastService string `json:"last_service"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          v.ID,
		Plate:       v.Plate,
		Make:        v.Make,
		Model:       v.Model,
		Year:        v.Year,
		Owner:       v.Owner,
		LastService: v.LastService,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}

type LaborResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

func FromLaborOption(l entities.LaborOption) LaborResponse {
	return LaborResponse{ID: l.ID, Name: l.Name, UnitPrice: l.UnitPrice}
}

func FromLaborOptions(options []entities.LaborOption) []LaborResponse {
	out := make([]LaborResponse, 0, len(options))
	for _, l := range options {
		out = append(out, FromLaborOption(l))
	}
	return out
}

// InventoryItemResponse adds the derived stock label so clients never
// recompute the threshold arithmetic.
type InventoryItemResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	UnitPrice         float64 `json:"unit_price"`
	AvailableQuantity int     `json:"available_quantity"`
	MinQuantity       int     `json:"min_quantity"`
	StockStatus       string  `json:"stock_status"`
}

func FromInventoryItem(i entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:                i.ID,
		Name:              i.Name,
		Category:          i.Category,
		UnitPrice:         i.UnitPrice,
		AvailableQuantity: i.AvailableQuantity,
		MinQuantity:       i.MinQuantity,
		StockStatus:       string(i.StockStatus()),
	}
}

func FromInventoryItems(items []entities.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInventoryItem(i))
	}
	return out
}
