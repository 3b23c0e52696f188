package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_api/internal/domain/entities"
	mock_interfaces "oficina_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderFixture struct {
	vehicles    *mock_interfaces.MockIVehicleRepository
	labor       *mock_interfaces.MockILaborRepository
	inventory   *mock_interfaces.MockIInventoryRepository
	orders      *mock_interfaces.MockIOrderRepository
	receivables *mock_interfaces.MockIReceivableRepository
	notifier    *mock_interfaces.MockINotifier
	uc          *OrderUseCase
}

func newOrderFixture(t *testing.T) *orderFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &orderFixture{
		vehicles:    mock_interfaces.NewMockIVehicleRepository(ctrl),
		labor:       mock_interfaces.NewMockILaborRepository(ctrl),
		inventory:   mock_interfaces.NewMockIInventoryRepository(ctrl),
		orders:      mock_interfaces.NewMockIOrderRepository(ctrl),
		receivables: mock_interfaces.NewMockIReceivableRepository(ctrl),
		notifier:    mock_interfaces.NewMockINotifier(ctrl),
	}
	f.uc = NewOrderUseCase(
		NewDraftStore(),
		f.vehicles,
		f.labor,
		f.inventory,
		f.orders,
		f.receivables,
		f.notifier,
		entities.QuantityPolicyClamp,
	)
	return f
}

func TestOrderUseCase_OpenDraft(t *testing.T) {
	f := newOrderFixture(t)

	draft, err := f.uc.OpenDraft(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.ID == "" {
		t.Fatalf("expected draft id")
	}
	if draft.Policy != entities.QuantityPolicyClamp {
		t.Fatalf("expected default policy, got %s", draft.Policy)
	}
	if draft.State != entities.DraftStateEditing {
		t.Fatalf("expected editing state, got %s", draft.State)
	}
	if draft.Status != entities.OrderStatusAgendado {
		t.Fatalf("expected Agendado default, got %s", draft.Status)
	}

	// Policy override applies per draft.
	strict, err := f.uc.OpenDraft(context.Background(), "strict")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strict.Policy != entities.QuantityPolicyStrict {
		t.Fatalf("expected strict policy, got %s", strict.Policy)
	}
}

func TestOrderUseCase_GetDraft_NotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.GetDraft(context.Background(), "missing")
	if !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestOrderUseCase_UpdateDraft(t *testing.T) {
	t.Run("unknown vehicle", func(t *testing.T) {
		f := newOrderFixture(t)
		draft, _ := f.uc.OpenDraft(context.Background(), "")

		f.vehicles.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.Vehicle{}, nil)

		id := int64(99)
		_, err := f.uc.UpdateDraft(context.Background(), draft.ID, UpdateDraftInput{VehicleID: &id})
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		f := newOrderFixture(t)
		draft, _ := f.uc.OpenDraft(context.Background(), "")

		bad := "Lavagem"
		_, err := f.uc.UpdateDraft(context.Background(), draft.ID, UpdateDraftInput{Type: &bad})
		if !errors.Is(err, ErrInvalidOrderType) {
			t.Fatalf("expected ErrInvalidOrderType, got %v", err)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		f := newOrderFixture(t)
		draft, _ := f.uc.OpenDraft(context.Background(), "")

		bad := "15/03/2026"
		_, err := f.uc.UpdateDraft(context.Background(), draft.ID, UpdateDraftInput{Date: &bad})
		if !errors.Is(err, ErrInvalidOrderDate) {
			t.Fatalf("expected ErrInvalidOrderDate, got %v", err)
		}
	})

	t.Run("partial update applies only set fields", func(t *testing.T) {
		f := newOrderFixture(t)
		draft, _ := f.uc.OpenDraft(context.Background(), "")

		f.vehicles.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Vehicle{ID: 2, Owner: "Maria Santos"}, nil)

		id := int64(2)
		typ := string(entities.OrderTypeRevisao)
		updated, err := f.uc.UpdateDraft(context.Background(), draft.ID, UpdateDraftInput{VehicleID: &id, Type: &typ})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.VehicleID != 2 || updated.Type != entities.OrderTypeRevisao {
			t.Fatalf("unexpected draft: %+v", updated)
		}
		if updated.Date != draft.Date || updated.Status != draft.Status {
			t.Fatalf("untouched fields must survive: %+v", updated)
		}
	})
}

func TestOrderUseCase_DraftSelections(t *testing.T) {
	item := entities.InventoryItem{ID: 5, Name: "Filtro de Ar", Category: "Filtros", UnitPrice: 32, AvailableQuantity: 3, MinQuantity: 5}

	t.Run("add labor resolves the catalog", func(t *testing.T) {
		f := newOrderFixture(t)
		draft, _ := f.uc.OpenDraft(context.Background(), "")

		f.labor.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.LaborOption{ID: 1, Name: "Troca de Óleo", UnitPrice: 50}, nil)

		updated, err := f.uc.AddDraftLabor(context.Background(), draft.ID, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Labor) != 1 || updated.Labor[0].ID != 1 {
			t.Fatalf("unexpected labor: %+v", updated.Labor)
		}
	})

	t.Run("unknown labor", func(t *testing.T) {
		f := newOrderFixture(t)
		draft, _ := f.uc.OpenDraft(context.Background(), "")

		f.labor.EXPECT().GetByID(gomock.Any(), int64(77)).Return(entities.LaborOption{}, nil)

		_, err := f.uc.AddDraftLabor(context.Background(), draft.ID, 77)
		if !errors.Is(err, ErrLaborNotFound) {
			t.Fatalf("expected ErrLaborNotFound, got %v", err)
		}
	})

	t.Run("ad-hoc labor lands in the catalog and the draft", func(t *testing.T) {
		f := newOrderFixture(t)
		draft, _ := f.uc.OpenDraft(context.Background(), "")

		f.labor.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LaborOption{})).DoAndReturn(
			func(_ context.Context, l entities.LaborOption) (entities.LaborOption, error) {
				if l.Name != "Solda do escapamento" || l.UnitPrice != 120.5 {
					t.Fatalf("unexpected option: %+v", l)
				}
				l.ID = 6
				return l, nil
			},
		)

		updated, err := f.uc.CreateDraftLabor(context.Background(), draft.ID, " Solda do escapamento ", "120.50")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Labor) != 1 || updated.Labor[0].ID != 6 {
			t.Fatalf("unexpected labor: %+v", updated.Labor)
		}
	})

	t.Run("add item clamps against stock", func(t *testing.T) {
		f := newOrderFixture(t)
		draft, _ := f.uc.OpenDraft(context.Background(), "")

		f.inventory.EXPECT().GetByID(gomock.Any(), int64(5)).Return(item, nil)

		updated, err := f.uc.AddDraftItem(context.Background(), draft.ID, 5, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Items) != 1 || updated.Items[0].UsedQuantity != 3 {
			t.Fatalf("unexpected items: %+v", updated.Items)
		}
	})

	t.Run("set quantity on unselected item", func(t *testing.T) {
		f := newOrderFixture(t)
		draft, _ := f.uc.OpenDraft(context.Background(), "")

		_, err := f.uc.SetDraftItemQuantity(context.Background(), draft.ID, 5, 2)
		if !errors.Is(err, entities.ErrItemLineNotFound) {
			t.Fatalf("expected ErrItemLineNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_SubmitDraft(t *testing.T) {
	item := entities.InventoryItem{ID: 5, Name: "Filtro de Ar", Category: "Filtros", UnitPrice: 32, AvailableQuantity: 3, MinQuantity: 5}

	t.Run("validation failure reaches no repository", func(t *testing.T) {
		f := newOrderFixture(t)
		draft, _ := f.uc.OpenDraft(context.Background(), "")

		_, err := f.uc.SubmitDraft(context.Background(), draft.ID)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if _, ok := vErr.Fields["vehicle_id"]; !ok {
			t.Fatalf("expected vehicle_id message, got %v", vErr.Fields)
		}
		if _, ok := vErr.Fields["cost"]; !ok {
			t.Fatalf("expected cost message, got %v", vErr.Fields)
		}

		// The draft survives and stays editable.
		again, err := f.uc.GetDraft(context.Background(), draft.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.State != entities.DraftStateEditing {
			t.Fatalf("expected editing state, got %s", again.State)
		}
	})

	t.Run("success persists, decrements stock and opens a receivable", func(t *testing.T) {
		f := newOrderFixture(t)
		draft, _ := f.uc.OpenDraft(context.Background(), "")

		f.vehicles.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Vehicle{ID: 1, Owner: "João Silva"}, nil).Times(2)
		f.labor.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.LaborOption{ID: 1, Name: "Troca de Óleo", UnitPrice: 50}, nil)
		f.inventory.EXPECT().GetByID(gomock.Any(), int64(5)).Return(item, nil).Times(2)

		id := int64(1)
		typ := string(entities.OrderTypeManutencao)
		if _, err := f.uc.UpdateDraft(context.Background(), draft.ID, UpdateDraftInput{VehicleID: &id, Type: &typ}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.AddDraftLabor(context.Background(), draft.ID, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.AddDraftItem(context.Background(), draft.ID, 5, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.TotalCost != 114.0 {
					t.Fatalf("expected total 114.00, got %v", o.TotalCost)
				}
				return o, nil
			},
		)
		f.inventory.EXPECT().UpdateQuantity(gomock.Any(), int64(5), 1).Return(item, nil)
		f.receivables.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Receivable{})).DoAndReturn(
			func(_ context.Context, r entities.Receivable) (entities.Receivable, error) {
				if r.Amount != 114.0 || r.Customer != "João Silva" || r.OrderID == "" {
					t.Fatalf("unexpected receivable: %+v", r)
				}
				if r.Status != entities.FinanceStatusPendente {
					t.Fatalf("expected pending receivable, got %s", r.Status)
				}
				return r, nil
			},
		)
		f.notifier.EXPECT().Success(gomock.Any(), "Serviço registrado com sucesso!")

		order, err := f.uc.SubmitDraft(context.Background(), draft.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID == "" || order.TotalCost != 114.0 {
			t.Fatalf("unexpected order: %+v", order)
		}

		// The draft is gone after submission.
		if _, err := f.uc.GetDraft(context.Background(), draft.ID); !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_GetOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.uc.GetOrder(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := f.uc.GetOrder(context.Background(), "os-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_ListOrders_Search(t *testing.T) {
	f := newOrderFixture(t)

	f.orders.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{
		{ID: "os-1", Type: entities.OrderTypeManutencao, Status: entities.OrderStatusAgendado},
		{ID: "os-2", Type: entities.OrderTypeReparo, Status: entities.OrderStatusConcluido, Description: "freios"},
	}, nil)

	out, err := f.uc.ListOrders(context.Background(), "freios")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "os-2" {
		t.Fatalf("unexpected result: %+v", out)
	}
}
