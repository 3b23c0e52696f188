package entities

// StockStatus is the display label derived from current stock vs the
// configured minimum.
type StockStatus string

const (
	StockStatusOut    StockStatus = "Sem Estoque"
	StockStatusLow    StockStatus = "Baixo"
	StockStatusMedium StockStatus = "Médio"
	StockStatusGood   StockStatus = "Bom"
)

// InventoryItem is a stocked part or product.
//
// AvailableQuantity is the ceiling on how much any single order may
// consume; order submission decrements it through the repository.
type InventoryItem struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	UnitPrice         float64 `json:"unit_price"`
	AvailableQuantity int     `json:"available_quantity"`
	MinQuantity       int     `json:"min_quantity"`
}

func (i InventoryItem) StockStatus() StockStatus {
	switch {
	case i.AvailableQuantity <= 0:
		return StockStatusOut
	case i.AvailableQuantity < i.MinQuantity:
		return StockStatusLow
	case i.AvailableQuantity < i.MinQuantity*2:
		return StockStatusMedium
	default:
		return StockStatusGood
	}
}
