package memory

import (
	"context"
	"sort"
	"sync"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"
)

// The memory repositories back the local/dev mode and the tests. They
// mirror the DynamoDB repositories' contracts: ids come from a
// monotonic counter owned by the store, and reads return copies so
// callers never alias internal state.

type VehicleRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]entities.Vehicle
}

var _ interfaces.IVehicleRepository = (*VehicleRepository)(nil)

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{items: map[int64]entities.Vehicle{}}
}

func (r *VehicleRepository) Create(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	v.ID = r.nextID
	r.items[v.ID] = v
	return v, nil
}

func (r *VehicleRepository) GetByID(_ context.Context, id int64) (entities.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *VehicleRepository) List(_ context.Context) ([]entities.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Vehicle, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type LaborRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]entities.LaborOption
}

var _ interfaces.ILaborRepository = (*LaborRepository)(nil)

func NewLaborRepository() *LaborRepository {
	return &LaborRepository{items: map[int64]entities.LaborOption{}}
}

func (r *LaborRepository) Create(_ context.Context, l entities.LaborOption) (entities.LaborOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	l.ID = r.nextID
	r.items[l.ID] = l
	return l, nil
}

func (r *LaborRepository) GetByID(_ context.Context, id int64) (entities.LaborOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *LaborRepository) List(_ context.Context) ([]entities.LaborOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.LaborOption, 0, len(r.items))
	for _, l := range r.items {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type InventoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]entities.InventoryItem
}

var _ interfaces.IInventoryRepository = (*InventoryRepository)(nil)

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{items: map[int64]entities.InventoryItem{}}
}

func (r *InventoryRepository) Create(_ context.Context, i entities.InventoryItem) (entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	i.ID = r.nextID
	r.items[i.ID] = i
	return i, nil
}

func (r *InventoryRepository) GetByID(_ context.Context, id int64) (entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *InventoryRepository) List(_ context.Context) ([]entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.InventoryItem, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InventoryRepository) UpdateQuantity(_ context.Context, id int64, quantity int) (entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return entities.InventoryItem{}, nil
	}
	item.AvailableQuantity = quantity
	r.items[id] = item
	return item, nil
}
