package memory

import (
	"context"
	"sort"
	"sync"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"
)

type PayableRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Payable
}

var _ interfaces.IPayableRepository = (*PayableRepository)(nil)

func NewPayableRepository() *PayableRepository {
	return &PayableRepository{items: map[string]entities.Payable{}}
}

func (r *PayableRepository) Create(_ context.Context, p entities.Payable) (entities.Payable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
	return p, nil
}

func (r *PayableRepository) GetByID(_ context.Context, id string) (entities.Payable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *PayableRepository) List(_ context.Context) ([]entities.Payable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Payable, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *PayableRepository) UpdateStatus(_ context.Context, id string, status entities.FinanceStatus) (entities.Payable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return entities.Payable{}, nil
	}
	p.Status = status
	r.items[id] = p
	return p, nil
}

type ReceivableRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Receivable
}

var _ interfaces.IReceivableRepository = (*ReceivableRepository)(nil)

func NewReceivableRepository() *ReceivableRepository {
	return &ReceivableRepository{items: map[string]entities.Receivable{}}
}

func (r *ReceivableRepository) Create(_ context.Context, rec entities.Receivable) (entities.Receivable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[rec.ID] = rec
	return rec, nil
}

func (r *ReceivableRepository) GetByID(_ context.Context, id string) (entities.Receivable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *ReceivableRepository) List(_ context.Context) ([]entities.Receivable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Receivable, 0, len(r.items))
	for _, rec := range r.items {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ReceivableRepository) UpdateStatus(_ context.Context, id string, status entities.FinanceStatus) (entities.Receivable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.items[id]
	if !ok {
		return entities.Receivable{}, nil
	}
	rec.Status = status
	r.items[id] = rec
	return rec, nil
}

type PaymentRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Payment
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{items: map[string]entities.Payment{}}
}

func (r *PaymentRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
	return p, nil
}

func (r *PaymentRepository) ListByReceivableID(_ context.Context, receivableID string) ([]entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.Payment
	for _, p := range r.items {
		if p.ReceivableID == receivableID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
