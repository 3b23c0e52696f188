package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound       = errors.New("vehicle not found")
	ErrInvalidPlate          = errors.New("plate must have exactly 7 characters")
	ErrInvalidMake           = errors.New("make is required")
	ErrInvalidModel          = errors.New("model is required")
	ErrInvalidYear           = errors.New("year must have 4 digits")
	ErrInvalidOwner          = errors.New("owner must have at least 3 characters")
	ErrInvalidLaborName      = errors.New("labor name must have at least 3 characters")
	ErrInvalidLaborPrice     = errors.New("labor price must be a positive decimal")
	ErrLaborNotFound         = errors.New("labor option not found")
	ErrItemNotFound          = errors.New("inventory item not found")
	ErrInvalidItemName       = errors.New("item name is required")
	ErrInvalidItemCategory   = errors.New("item category is required")
	ErrInvalidItemPrice      = errors.New("item price must not be negative")
	ErrInvalidItemQuantity   = errors.New("item quantity must not be negative")
	ErrInvalidAdjustmentKind = errors.New("adjustment kind must be add or remove")
	ErrInvalidAdjustmentQty  = errors.New("adjustment quantity must be positive")
)

// AdjustmentKind is the direction of a manual stock correction.
type AdjustmentKind string

const (
	AdjustmentAdd    AdjustmentKind = "add"
	AdjustmentRemove AdjustmentKind = "remove"
)

type RegisterVehicleInput struct {
	Plate string
	Make  string
	Model string
	Year  int
	Owner string
}

type CreateInventoryItemInput struct {
	Name        string
	Category    string
	UnitPrice   float64
	Quantity    int
	MinQuantity int
}

// ICatalogUseCase exposes the shared catalogs the order builder selects
// from: vehicles, labor options and inventory. Mutations here are
// visible to every draft in the same process, which is the point — the
// catalogs are shared, append-only state.
type ICatalogUseCase interface {
	RegisterVehicle(ctx context.Context, input RegisterVehicleInput) (entities.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (entities.Vehicle, error)
	ListVehicles(ctx context.Context, search string) ([]entities.Vehicle, error)

	CreateLaborOption(ctx context.Context, name, price string) (entities.LaborOption, error)
	ListLaborOptions(ctx context.Context) ([]entities.LaborOption, error)

	CreateInventoryItem(ctx context.Context, input CreateInventoryItemInput) (entities.InventoryItem, error)
	ListInventory(ctx context.Context, search string) ([]entities.InventoryItem, error)
	AdjustInventory(ctx context.Context, id int64, kind AdjustmentKind, quantity int, reason string) (entities.InventoryItem, error)
}

type CatalogUseCase struct {
	vehicles  interfaces.IVehicleRepository
	labor     interfaces.ILaborRepository
	inventory interfaces.IInventoryRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(vehicles interfaces.IVehicleRepository, labor interfaces.ILaborRepository, inventory interfaces.IInventoryRepository) *CatalogUseCase {
	return &CatalogUseCase{vehicles: vehicles, labor: labor, inventory: inventory}
}

func (u *CatalogUseCase) RegisterVehicle(ctx context.Context, input RegisterVehicleInput) (entities.Vehicle, error) {
	plate := strings.ToUpper(strings.TrimSpace(input.Plate))
	if utf8.RuneCountInString(plate) != 7 {
		return entities.Vehicle{}, ErrInvalidPlate
	}
	vehicleMake := strings.TrimSpace(input.Make)
	if vehicleMake == "" {
		return entities.Vehicle{}, ErrInvalidMake
	}
	model := strings.TrimSpace(input.Model)
	if model == "" {
		return entities.Vehicle{}, ErrInvalidModel
	}
	if input.Year < 1000 || input.Year > 9999 {
		return entities.Vehicle{}, ErrInvalidYear
	}
	owner := strings.TrimSpace(input.Owner)
	if utf8.RuneCountInString(owner) < 3 {
		return entities.Vehicle{}, ErrInvalidOwner
	}

	v := entities.Vehicle{
		Plate:       plate,
		Make:        vehicleMake,
		Model:       model,
		Year:        input.Year,
		Owner:       owner,
		LastService: time.Now().UTC().Format(entities.DateLayout),
	}
	return u.vehicles.Create(ctx, v)
}

func (u *CatalogUseCase) GetVehicle(ctx context.Context, id int64) (entities.Vehicle, error) {
	if id <= 0 {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	v, err := u.vehicles.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == 0 {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *CatalogUseCase) ListVehicles(ctx context.Context, search string) ([]entities.Vehicle, error) {
	all, err := u.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	if search = strings.TrimSpace(search); search == "" {
		return all, nil
	}
	out := make([]entities.Vehicle, 0, len(all))
	for _, v := range all {
		if matchesSearch(search, v.Plate, v.Make, v.Model, v.Owner) {
			out = append(out, v)
		}
	}
	return out, nil
}

// CreateLaborOption accepts the price as text because that is how the
// order form captures it; "75.5" is valid input.
func (u *CatalogUseCase) CreateLaborOption(ctx context.Context, name, price string) (entities.LaborOption, error) {
	name, value, err := validateLaborOption(name, price)
	if err != nil {
		return entities.LaborOption{}, err
	}
	return u.labor.Create(ctx, entities.LaborOption{Name: name, UnitPrice: value})
}

func validateLaborOption(name, price string) (string, float64, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 3 {
		return "", 0, ErrInvalidLaborName
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || value <= 0 {
		return "", 0, ErrInvalidLaborPrice
	}
	return name, value, nil
}

func (u *CatalogUseCase) ListLaborOptions(ctx context.Context) ([]entities.LaborOption, error) {
	return u.labor.List(ctx)
}

func (u *CatalogUseCase) CreateInventoryItem(ctx context.Context, input CreateInventoryItemInput) (entities.InventoryItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.InventoryItem{}, ErrInvalidItemName
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return entities.InventoryItem{}, ErrInvalidItemCategory
	}
	if input.UnitPrice < 0 {
		return entities.InventoryItem{}, ErrInvalidItemPrice
	}
	if input.Quantity < 0 || input.MinQuantity < 0 {
		return entities.InventoryItem{}, ErrInvalidItemQuantity
	}

	item := entities.InventoryItem{
		Name:              name,
		Category:          category,
		UnitPrice:         input.UnitPrice,
		AvailableQuantity: input.Quantity,
		MinQuantity:       input.MinQuantity,
	}
	return u.inventory.Create(ctx, item)
}

// ListInventory filters by case-insensitive substring match against
// name and category. Exhausted items are not excluded; the caller
// disables the add affordance instead.
func (u *CatalogUseCase) ListInventory(ctx context.Context, search string) ([]entities.InventoryItem, error) {
	all, err := u.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	if search = strings.TrimSpace(search); search == "" {
		return all, nil
	}
	out := make([]entities.InventoryItem, 0, len(all))
	for _, item := range all {
		if matchesSearch(search, item.Name, item.Category) {
			out = append(out, item)
		}
	}
	return out, nil
}

// AdjustInventory applies a manual stock correction. Removals floor at
// zero; the reason is only logged by the caller, not stored.
func (u *CatalogUseCase) AdjustInventory(ctx context.Context, id int64, kind AdjustmentKind, quantity int, reason string) (entities.InventoryItem, error) {
	if kind != AdjustmentAdd && kind != AdjustmentRemove {
		return entities.InventoryItem{}, ErrInvalidAdjustmentKind
	}
	if quantity <= 0 {
		return entities.InventoryItem{}, ErrInvalidAdjustmentQty
	}

	item, err := u.inventory.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if item.ID == 0 {
		return entities.InventoryItem{}, ErrItemNotFound
	}

	next := item.AvailableQuantity
	if kind == AdjustmentAdd {
		next += quantity
	} else {
		next -= quantity
		if next < 0 {
			next = 0
		}
	}
	return u.inventory.UpdateQuantity(ctx, id, next)
}

func matchesSearch(search string, fields ...string) bool {
	search = strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
