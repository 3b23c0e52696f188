package interfaces

import (
	"context"
	"oficina_api/internal/domain/entities"
)

// IPayableRepository abstracts persistence for accounts payable.
type IPayableRepository interface {
	Create(ctx context.Context, p entities.Payable) (entities.Payable, error)
	GetByID(ctx context.Context, id string) (entities.Payable, error)
	List(ctx context.Context) ([]entities.Payable, error)
	UpdateStatus(ctx context.Context, id string, status entities.FinanceStatus) (entities.Payable, error)
}

// IReceivableRepository abstracts persistence for accounts receivable.
type IReceivableRepository interface {
	Create(ctx context.Context, r entities.Receivable) (entities.Receivable, error)
	GetByID(ctx context.Context, id string) (entities.Receivable, error)
	List(ctx context.Context) ([]entities.Receivable, error)
	UpdateStatus(ctx context.Context, id string, status entities.FinanceStatus) (entities.Receivable, error)
}

// IPaymentRepository abstracts persistence for settled receivable
// payments.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByReceivableID(ctx context.Context, receivableID string) ([]entities.Payment, error)
}
