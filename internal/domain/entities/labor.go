package entities

// LaborOption is a fixed-price, quantity-less service line offered by
// the shop. The catalog is append-only: options created ad hoc from an
// order draft are merged back so later orders can reuse them.
type LaborOption struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}
