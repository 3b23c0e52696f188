package memory

import (
	"context"
	"sort"
	"sync"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"
)

type OrderRepository struct {
	mu    sync.RWMutex
	items map[string]entities.ServiceOrder
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{items: map[string]entities.ServiceOrder{}}
}

func (r *OrderRepository) Create(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[o.ID] = o
	return o, nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *OrderRepository) List(_ context.Context) ([]entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.ServiceOrder, 0, len(r.items))
	for _, o := range r.items {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
