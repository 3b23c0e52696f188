package request

// RegisterVehicleRequest is the payload for vehicle registration.
type RegisterVehicleRequest struct {
	Plate string `json:"plate" binding:"required"`
	Make  string `json:"make" binding:"required"`
	Model string `json:"model" binding:"required"`
	Year  int    `json:"year" binding:"required"`
	Owner string `json:"owner" binding:"required"`
}

// CreateLaborRequest is the payload for labor catalog creation. Price
// arrives as a decimal string the way the form submits it; the use case
// parses and validates it.
type CreateLaborRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

type CreateInventoryItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	MinQuantity int     `json:"min_quantity"`
}

// AdjustInventoryRequest is a manual stock correction. Kind is "add" or
// "remove".
type AdjustInventoryRequest struct {
	Kind     string `json:"kind" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Reason   string `json:"reason"`
}
