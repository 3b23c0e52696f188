package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_api/internal/domain/entities"
	mock_interfaces "oficina_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_RegisterVehicle(t *testing.T) {
	valid := RegisterVehicleInput{Plate: "abc1234", Make: "Fiat", Model: "Uno", Year: 2018, Owner: "João Silva"}

	t.Run("normalizes and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewCatalogUseCase(vehicles, nil, nil)

		vehicles.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.Plate != "ABC1234" {
					t.Fatalf("plate must be upper-cased, got %q", v.Plate)
				}
				if v.LastService == "" {
					t.Fatalf("expected last_service to be stamped")
				}
				v.ID = 3
				return v, nil
			},
		)

		created, err := uc.RegisterVehicle(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 3 {
			t.Fatalf("expected assigned id, got %d", created.ID)
		}
	})

	t.Run("field validation", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil, nil)
		cases := []struct {
			name  string
			input RegisterVehicleInput
			want  error
		}{
			{"short plate", RegisterVehicleInput{Plate: "ABC123", Make: "Fiat", Model: "Uno", Year: 2018, Owner: "João Silva"}, ErrInvalidPlate},
			{"missing make", RegisterVehicleInput{Plate: "ABC1234", Model: "Uno", Year: 2018, Owner: "João Silva"}, ErrInvalidMake},
			{"missing model", RegisterVehicleInput{Plate: "ABC1234", Make: "Fiat", Year: 2018, Owner: "João Silva"}, ErrInvalidModel},
			{"bad year", RegisterVehicleInput{Plate: "ABC1234", Make: "Fiat", Model: "Uno", Year: 99, Owner: "João Silva"}, ErrInvalidYear},
			{"short owner", RegisterVehicleInput{Plate: "ABC1234", Make: "Fiat", Model: "Uno", Year: 2018, Owner: "Jo"}, ErrInvalidOwner},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.RegisterVehicle(context.Background(), tc.input); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}

func TestCatalogUseCase_GetVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
	uc := NewCatalogUseCase(vehicles, nil, nil)

	vehicles.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Vehicle{}, nil)

	if _, err := uc.GetVehicle(context.Background(), 9); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
	if _, err := uc.GetVehicle(context.Background(), 0); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound for non-positive id, got %v", err)
	}
}

func TestCatalogUseCase_ListVehicles_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
	uc := NewCatalogUseCase(vehicles, nil, nil)

	all := []entities.Vehicle{
		{ID: 1, Plate: "ABC1234", Make: "Toyota", Model: "Corolla", Owner: "João Silva"},
		{ID: 2, Plate: "XYZ5678", Make: "Honda", Model: "Civic", Owner: "Maria Santos"},
	}
	vehicles.EXPECT().List(gomock.Any()).Return(all, nil).Times(2)

	out, err := uc.ListVehicles(context.Background(), "maria")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("unexpected result: %+v", out)
	}

	out, err = uc.ListVehicles(context.Background(), "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("blank search must return everything, got %+v", out)
	}
}

func TestCatalogUseCase_CreateLaborOption(t *testing.T) {
	t.Run("parses the price text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		labor := mock_interfaces.NewMockILaborRepository(ctrl)
		uc := NewCatalogUseCase(nil, labor, nil)

		labor.EXPECT().Create(gomock.Any(), entities.LaborOption{Name: "Alinhamento", UnitPrice: 75.5}).
			Return(entities.LaborOption{ID: 4, Name: "Alinhamento", UnitPrice: 75.5}, nil)

		created, err := uc.CreateLaborOption(context.Background(), " Alinhamento ", "75.5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 4 {
			t.Fatalf("expected assigned id, got %d", created.ID)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil, nil)
		if _, err := uc.CreateLaborOption(context.Background(), "Ar", "75.5"); !errors.Is(err, ErrInvalidLaborName) {
			t.Fatalf("expected ErrInvalidLaborName, got %v", err)
		}
		if _, err := uc.CreateLaborOption(context.Background(), "Alinhamento", "grátis"); !errors.Is(err, ErrInvalidLaborPrice) {
			t.Fatalf("expected ErrInvalidLaborPrice, got %v", err)
		}
		if _, err := uc.CreateLaborOption(context.Background(), "Alinhamento", "0"); !errors.Is(err, ErrInvalidLaborPrice) {
			t.Fatalf("expected ErrInvalidLaborPrice for zero, got %v", err)
		}
	})
}

func TestCatalogUseCase_ListInventory_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	inventory := mock_interfaces.NewMockIInventoryRepository(ctrl)
	uc := NewCatalogUseCase(nil, nil, inventory)

	inventory.EXPECT().List(gomock.Any()).Return([]entities.InventoryItem{
		{ID: 1, Name: "Óleo 5W30", Category: "Lubrificantes", AvailableQuantity: 10},
		{ID: 5, Name: "Filtro de Ar", Category: "Filtros", AvailableQuantity: 0},
	}, nil)

	// Exhausted items still appear; the front end greys them out.
	out, err := uc.ListInventory(context.Background(), "filtro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != 5 {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestCatalogUseCase_AdjustInventory(t *testing.T) {
	item := entities.InventoryItem{ID: 5, Name: "Filtro de Ar", Category: "Filtros", AvailableQuantity: 3, MinQuantity: 5}

	t.Run("remove floors at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inventory := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewCatalogUseCase(nil, nil, inventory)

		inventory.EXPECT().GetByID(gomock.Any(), int64(5)).Return(item, nil)
		inventory.EXPECT().UpdateQuantity(gomock.Any(), int64(5), 0).Return(entities.InventoryItem{ID: 5, AvailableQuantity: 0}, nil)

		out, err := uc.AdjustInventory(context.Background(), 5, AdjustmentRemove, 10, "avaria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AvailableQuantity != 0 {
			t.Fatalf("expected floor at zero, got %d", out.AvailableQuantity)
		}
	})

	t.Run("add accumulates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inventory := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewCatalogUseCase(nil, nil, inventory)

		inventory.EXPECT().GetByID(gomock.Any(), int64(5)).Return(item, nil)
		inventory.EXPECT().UpdateQuantity(gomock.Any(), int64(5), 7).Return(entities.InventoryItem{ID: 5, AvailableQuantity: 7}, nil)

		if _, err := uc.AdjustInventory(context.Background(), 5, AdjustmentAdd, 4, "reposição"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inventory := mock_interfaces.NewMockIInventoryRepository(ctrl)
		uc := NewCatalogUseCase(nil, nil, inventory)

		if _, err := uc.AdjustInventory(context.Background(), 5, "set", 1, ""); !errors.Is(err, ErrInvalidAdjustmentKind) {
			t.Fatalf("expected ErrInvalidAdjustmentKind, got %v", err)
		}
		if _, err := uc.AdjustInventory(context.Background(), 5, AdjustmentAdd, 0, ""); !errors.Is(err, ErrInvalidAdjustmentQty) {
			t.Fatalf("expected ErrInvalidAdjustmentQty, got %v", err)
		}

		inventory.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.InventoryItem{}, nil)
		if _, err := uc.AdjustInventory(context.Background(), 99, AdjustmentAdd, 1, ""); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}
