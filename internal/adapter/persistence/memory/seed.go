package memory

import (
	"context"

	"oficina_api/internal/domain/entities"
)

// Seed fills the catalogs with the shop's starter data for local mode.
// Ids are assigned by the repositories' counters.
func Seed(ctx context.Context, vehicles *VehicleRepository, labor *LaborRepository, inventory *InventoryRepository) error {
	seedVehicles := []entities.Vehicle{
		{Plate: "ABC1234", Make: "Toyota", Model: "Corolla", Year: 2019, Owner: "Carlos Silva", LastService: "2023-05-15"},
		{Plate: "DEF5678", Make: "Honda", Model: "Civic", Year: 2020, Owner: "Ana Oliveira", LastService: "2023-06-22"},
		{Plate: "GHI9012", Make: "Fiat", Model: "Uno", Year: 2015, Owner: "Roberto Santos", LastService: "2023-07-05"},
		{Plate: "JKL3456", Make: "Volkswagen", Model: "Gol", Year: 2018, Owner: "Maria Souza", LastService: "2023-06-10"},
		{Plate: "MNO7890", Make: "Chevrolet", Model: "Onix", Year: 2021, Owner: "João Ferreira", LastService: "2023-07-18"},
	}
	for _, v := range seedVehicles {
		if _, err := vehicles.Create(ctx, v); err != nil {
			return err
		}
	}

	seedLabor := []entities.LaborOption{
		{Name: "Troca de Óleo", UnitPrice: 50.00},
		{Name: "Troca de Filtros", UnitPrice: 30.00},
		{Name: "Troca de Pastilhas de Freio", UnitPrice: 80.00},
		{Name: "Alinhamento e Balanceamento", UnitPrice: 120.00},
		{Name: "Diagnóstico Elétrico", UnitPrice: 100.00},
	}
	for _, l := range seedLabor {
		if _, err := labor.Create(ctx, l); err != nil {
			return err
		}
	}

	seedInventory := []entities.InventoryItem{
		{Name: "Óleo de Motor 10W40", Category: "Lubrificantes", UnitPrice: 45.90, AvailableQuantity: 18, MinQuantity: 10},
		{Name: "Filtro de Óleo", Category: "Filtros", UnitPrice: 25.50, AvailableQuantity: 12, MinQuantity: 15},
		{Name: "Filtro de Ar", Category: "Filtros", UnitPrice: 32.00, AvailableQuantity: 3, MinQuantity: 5},
		{Name: "Pastilha de Freio Dianteira", Category: "Freios", UnitPrice: 120.00, AvailableQuantity: 8, MinQuantity: 10},
		{Name: "Fluido de Freio DOT4", Category: "Lubrificantes", UnitPrice: 28.50, AvailableQuantity: 15, MinQuantity: 8},
	}
	for _, i := range seedInventory {
		if _, err := inventory.Create(ctx, i); err != nil {
			return err
		}
	}
	return nil
}
