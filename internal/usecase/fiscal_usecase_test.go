package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_api/internal/domain/entities"
	mock_interfaces "oficina_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fiscalFixture struct {
	documents *mock_interfaces.MockIFiscalDocumentRepository
	orders    *mock_interfaces.MockIOrderRepository
	inventory *mock_interfaces.MockIInventoryRepository
	labor     *mock_interfaces.MockILaborRepository
	uc        *FiscalUseCase
}

func newFiscalFixture(t *testing.T) *fiscalFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fiscalFixture{
		documents: mock_interfaces.NewMockIFiscalDocumentRepository(ctrl),
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		inventory: mock_interfaces.NewMockIInventoryRepository(ctrl),
		labor:     mock_interfaces.NewMockILaborRepository(ctrl),
	}
	f.uc = NewFiscalUseCase(f.documents, f.orders, f.inventory, f.labor)
	return f
}

func TestFiscalUseCase_IssueDocument_AdHocLines(t *testing.T) {
	f := newFiscalFixture(t)

	item := entities.InventoryItem{ID: 5, Name: "Filtro de Ar", UnitPrice: 32, AvailableQuantity: 3}
	// Duplicate item ids merge into one line; quantity is not bounded
	// by stock because the document records what was billed.
	f.inventory.EXPECT().GetByID(gomock.Any(), int64(5)).Return(item, nil)
	f.labor.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.LaborOption{ID: 1, Name: "Troca de Óleo", UnitPrice: 50}, nil)
	f.documents.EXPECT().NextNumber(gomock.Any(), entities.FiscalDocumentNFCe).Return(int64(42), nil)
	f.documents.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.FiscalDocument{})).DoAndReturn(
		func(_ context.Context, doc entities.FiscalDocument) (entities.FiscalDocument, error) {
			if doc.Number != "000042" {
				t.Fatalf("expected zero-padded number, got %q", doc.Number)
			}
			if len(doc.Items) != 1 || doc.Items[0].Quantity != 6 {
				t.Fatalf("expected merged item line, got %+v", doc.Items)
			}
			if len(doc.Services) != 1 || doc.Services[0].Quantity != 1 {
				t.Fatalf("unexpected services: %+v", doc.Services)
			}
			// 6×32.00 + 50.00
			if doc.Value != 242.0 {
				t.Fatalf("expected value 242.00, got %v", doc.Value)
			}
			if doc.Status != entities.FiscalDocumentStatusEmitida {
				t.Fatalf("expected Emitida, got %s", doc.Status)
			}
			return doc, nil
		},
	)

	doc, err := f.uc.IssueDocument(context.Background(), IssueDocumentInput{
		Type:             "NFC-e",
		CustomerName:     "João Silva",
		CustomerDocument: "12345678901",
		Items: []DocumentItemInput{
			{ItemID: 5, Quantity: 2},
			{ItemID: 5, Quantity: 4},
		},
		Services: []DocumentServiceInput{{LaborID: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID == "" {
		t.Fatalf("expected document id")
	}
}

func TestFiscalUseCase_IssueDocument_FromOrder(t *testing.T) {
	f := newFiscalFixture(t)

	f.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{
		ID:   "os-1",
		Type: entities.OrderTypeManutencao,
		LaborLines: []entities.OrderLaborLine{
			{LaborID: 1, Name: "Troca de Óleo", UnitPrice: 50},
		},
		InventoryLines: []entities.OrderInventoryLine{
			{ItemID: 5, Name: "Filtro de Ar", UnitPrice: 32, UsedQuantity: 2},
		},
		TotalCost: 114,
	}, nil)
	f.documents.EXPECT().NextNumber(gomock.Any(), entities.FiscalDocumentNFe).Return(int64(1), nil)
	f.documents.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.FiscalDocument{})).DoAndReturn(
		func(_ context.Context, doc entities.FiscalDocument) (entities.FiscalDocument, error) {
			if doc.OrderID != "os-1" {
				t.Fatalf("expected order reference, got %q", doc.OrderID)
			}
			if doc.Value != 114.0 {
				t.Fatalf("expected value from order lines, got %v", doc.Value)
			}
			return doc, nil
		},
	)

	_, err := f.uc.IssueDocument(context.Background(), IssueDocumentInput{
		Type:             "NF-e",
		CustomerName:     "João Silva",
		CustomerDocument: "12345678901",
		OrderID:          "os-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFiscalUseCase_IssueDocument_Rejections(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		f := newFiscalFixture(t)
		_, err := f.uc.IssueDocument(context.Background(), IssueDocumentInput{Type: "boleto", CustomerName: "João Silva", CustomerDocument: "12345678901"})
		if !errors.Is(err, ErrInvalidDocumentType) {
			t.Fatalf("expected ErrInvalidDocumentType, got %v", err)
		}
	})

	t.Run("short customer document", func(t *testing.T) {
		f := newFiscalFixture(t)
		_, err := f.uc.IssueDocument(context.Background(), IssueDocumentInput{Type: "NF-e", CustomerName: "João Silva", CustomerDocument: "123"})
		if !errors.Is(err, ErrInvalidCustomerDocument) {
			t.Fatalf("expected ErrInvalidCustomerDocument, got %v", err)
		}
	})

	t.Run("no lines", func(t *testing.T) {
		f := newFiscalFixture(t)
		_, err := f.uc.IssueDocument(context.Background(), IssueDocumentInput{Type: "NF-e", CustomerName: "João Silva", CustomerDocument: "12345678901"})
		if !errors.Is(err, ErrEmptyDocument) {
			t.Fatalf("expected ErrEmptyDocument, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newFiscalFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "os-9").Return(entities.ServiceOrder{}, nil)
		_, err := f.uc.IssueDocument(context.Background(), IssueDocumentInput{Type: "NF-e", CustomerName: "João Silva", CustomerDocument: "12345678901", OrderID: "os-9"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestFiscalUseCase_ListDocuments_Filters(t *testing.T) {
	f := newFiscalFixture(t)

	all := []entities.FiscalDocument{
		{ID: "d1", Number: "000001", Type: entities.FiscalDocumentNFe, CustomerName: "João Silva"},
		{ID: "d2", Number: "000002", Type: entities.FiscalDocumentNFSe, CustomerName: "Maria Santos"},
		{ID: "d3", Number: "000003", Type: entities.FiscalDocumentNFe, CustomerName: "Maria Santos"},
	}
	f.documents.EXPECT().List(gomock.Any()).Return(all, nil).Times(2)

	out, err := f.uc.ListDocuments(context.Background(), "NF-e", "maria")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "d3" {
		t.Fatalf("unexpected result: %+v", out)
	}

	out, err = f.uc.ListDocuments(context.Background(), "", "000002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "d2" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestFiscalUseCase_CancelDocument(t *testing.T) {
	t.Run("marks the document cancelled", func(t *testing.T) {
		f := newFiscalFixture(t)
		f.documents.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.FiscalDocument{ID: "d1", Status: entities.FiscalDocumentStatusEmitida}, nil)
		f.documents.EXPECT().UpdateStatus(gomock.Any(), "d1", entities.FiscalDocumentStatusCancelada).
			Return(entities.FiscalDocument{ID: "d1", Status: entities.FiscalDocumentStatusCancelada}, nil)

		doc, err := f.uc.CancelDocument(context.Background(), "d1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Status != entities.FiscalDocumentStatusCancelada {
			t.Fatalf("expected Cancelada, got %s", doc.Status)
		}
	})

	t.Run("cancel twice", func(t *testing.T) {
		f := newFiscalFixture(t)
		f.documents.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.FiscalDocument{ID: "d1", Status: entities.FiscalDocumentStatusCancelada}, nil)

		_, err := f.uc.CancelDocument(context.Background(), "d1")
		if !errors.Is(err, ErrDocumentCancelled) {
			t.Fatalf("expected ErrDocumentCancelled, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFiscalFixture(t)
		f.documents.EXPECT().GetByID(gomock.Any(), "d9").Return(entities.FiscalDocument{}, nil)

		_, err := f.uc.CancelDocument(context.Background(), "d9")
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})
}
