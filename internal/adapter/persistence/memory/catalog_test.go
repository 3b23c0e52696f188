package memory

import (
	"context"
	"testing"

	"oficina_api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleRepository_CounterIsMonotonic(t *testing.T) {
	ctx := context.Background()
	repo := NewVehicleRepository()

	first, err := repo.Create(ctx, entities.Vehicle{Plate: "ABC1234", Make: "Fiat", Model: "Uno", Year: 2015, Owner: "Roberto Santos"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, entities.Vehicle{Plate: "DEF5678", Make: "Honda", Model: "Civic", Year: 2020, Owner: "Ana Oliveira"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	// Unknown ids come back as the zero value, not an error.
	missing, err := repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestInventoryRepository_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	repo := NewInventoryRepository()

	item, err := repo.Create(ctx, entities.InventoryItem{Name: "Filtro de Ar", Category: "Filtros", UnitPrice: 32, AvailableQuantity: 3, MinQuantity: 5})
	require.NoError(t, err)

	updated, err := repo.UpdateQuantity(ctx, item.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.AvailableQuantity)

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.AvailableQuantity)

	missing, err := repo.UpdateQuantity(ctx, 99, 10)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestListIsSortedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewLaborRepository()

	for _, name := range []string{"Troca de Óleo", "Alinhamento", "Diagnóstico Elétrico"} {
		_, err := repo.Create(ctx, entities.LaborOption{Name: name, UnitPrice: 50})
		require.NoError(t, err)
	}

	out, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, l := range out {
		assert.Equal(t, int64(i+1), l.ID)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	vehicles := NewVehicleRepository()
	labor := NewLaborRepository()
	inventory := NewInventoryRepository()

	require.NoError(t, Seed(ctx, vehicles, labor, inventory))

	vs, err := vehicles.List(ctx)
	require.NoError(t, err)
	assert.Len(t, vs, 5)

	ls, err := labor.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ls, 5)

	is, err := inventory.List(ctx)
	require.NoError(t, err)
	require.Len(t, is, 5)

	// The starter stock keeps low-stock items around so the alert
	// band is visible out of the box.
	statuses := map[entities.StockStatus]bool{}
	for _, item := range is {
		statuses[item.StockStatus()] = true
	}
	assert.True(t, statuses[entities.StockStatusLow])
	assert.True(t, statuses[entities.StockStatusMedium])
}
