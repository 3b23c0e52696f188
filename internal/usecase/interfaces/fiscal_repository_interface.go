package interfaces

import (
	"context"
	"oficina_api/internal/domain/entities"
)

// IFiscalDocumentRepository abstracts persistence for fiscal documents.
//
// NextNumber returns the next value of a per-type sequential counter
// owned by the store. Real fiscal numbering is out of scope; the
// counter only keeps documents distinguishable.
type IFiscalDocumentRepository interface {
	Create(ctx context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error)
	GetByID(ctx context.Context, id string) (entities.FiscalDocument, error)
	List(ctx context.Context) ([]entities.FiscalDocument, error)
	UpdateStatus(ctx context.Context, id string, status entities.FiscalDocumentStatus) (entities.FiscalDocument, error)
	NextNumber(ctx context.Context, docType entities.FiscalDocumentType) (int64, error)
}
