package interfaces

import (
	"context"
	"oficina_api/internal/domain/entities"
)

// IVehicleRepository abstracts persistence for the vehicle catalog.
//
// Create assigns the entity id from a monotonic counter owned by the
// store; callers never derive ids from collection size.
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id int64) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
}

// ILaborRepository abstracts persistence for the labor catalog. The
// catalog is append-only.
type ILaborRepository interface {
	Create(ctx context.Context, l entities.LaborOption) (entities.LaborOption, error)
	GetByID(ctx context.Context, id int64) (entities.LaborOption, error)
	List(ctx context.Context) ([]entities.LaborOption, error)
}

// IInventoryRepository abstracts persistence for shop stock.
type IInventoryRepository interface {
	Create(ctx context.Context, i entities.InventoryItem) (entities.InventoryItem, error)
	GetByID(ctx context.Context, id int64) (entities.InventoryItem, error)
	List(ctx context.Context) ([]entities.InventoryItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (entities.InventoryItem, error)
}
