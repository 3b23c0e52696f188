package memory

import (
	"context"
	"sort"
	"sync"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"
)

type FiscalDocumentRepository struct {
	mu       sync.RWMutex
	items    map[string]entities.FiscalDocument
	counters map[entities.FiscalDocumentType]int64
}

var _ interfaces.IFiscalDocumentRepository = (*FiscalDocumentRepository)(nil)

func NewFiscalDocumentRepository() *FiscalDocumentRepository {
	return &FiscalDocumentRepository{
		items:    map[string]entities.FiscalDocument{},
		counters: map[entities.FiscalDocumentType]int64{},
	}
}

func (r *FiscalDocumentRepository) Create(_ context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[d.ID] = d
	return d, nil
}

func (r *FiscalDocumentRepository) GetByID(_ context.Context, id string) (entities.FiscalDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *FiscalDocumentRepository) List(_ context.Context) ([]entities.FiscalDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.FiscalDocument, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *FiscalDocumentRepository) UpdateStatus(_ context.Context, id string, status entities.FiscalDocumentStatus) (entities.FiscalDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok {
		return entities.FiscalDocument{}, nil
	}
	d.Status = status
	r.items[id] = d
	return d, nil
}

func (r *FiscalDocumentRepository) NextNumber(_ context.Context, docType entities.FiscalDocumentType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[docType]++
	return r.counters[docType], nil
}
