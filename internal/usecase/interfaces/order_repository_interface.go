package interfaces

import (
	"context"
	"oficina_api/internal/domain/entities"
)

// IOrderRepository abstracts persistence for submitted service orders.
// Drafts never touch the repository; only finalized records are stored.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
}
