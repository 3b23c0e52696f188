package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"
)

var (
	ErrDraftNotFound      = errors.New("draft not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderType   = errors.New("invalid order type")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidOrderDate   = errors.New("invalid order date")
)

// ValidationError carries the per-field messages produced when a draft
// fails submission checks. The draft stays editable; nothing is
// persisted or emitted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order validation failed: %d field(s)", len(e.Fields))
}

type UpdateDraftInput struct {
	Date        *string
	VehicleID   *int64
	Type        *string
	Description *string
	Status      *string
}

// IOrderUseCase drives the order-composition lifecycle: open a draft,
// mutate its selections through the catalog, submit or discard it, and
// read back submitted orders.
type IOrderUseCase interface {
	OpenDraft(ctx context.Context, policy string) (entities.OrderDraft, error)
	GetDraft(ctx context.Context, id string) (entities.OrderDraft, error)
	UpdateDraft(ctx context.Context, id string, input UpdateDraftInput) (entities.OrderDraft, error)
	CancelDraft(ctx context.Context, id string) error

	AddDraftLabor(ctx context.Context, draftID string, laborID int64) (entities.OrderDraft, error)
	CreateDraftLabor(ctx context.Context, draftID, name, price string) (entities.OrderDraft, error)
	RemoveDraftLabor(ctx context.Context, draftID string, laborID int64) (entities.OrderDraft, error)

	AddDraftItem(ctx context.Context, draftID string, itemID int64, quantity int) (entities.OrderDraft, error)
	SetDraftItemQuantity(ctx context.Context, draftID string, itemID int64, quantity int) (entities.OrderDraft, error)
	RemoveDraftItem(ctx context.Context, draftID string, itemID int64) (entities.OrderDraft, error)

	SubmitDraft(ctx context.Context, draftID string) (entities.ServiceOrder, error)
	ListOrders(ctx context.Context, search string) ([]entities.ServiceOrder, error)
	GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error)
}

type OrderUseCase struct {
	drafts      *DraftStore
	vehicles    interfaces.IVehicleRepository
	labor       interfaces.ILaborRepository
	inventory   interfaces.IInventoryRepository
	orders      interfaces.IOrderRepository
	receivables interfaces.IReceivableRepository
	notifier    interfaces.INotifier

	defaultPolicy entities.QuantityPolicy
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	drafts *DraftStore,
	vehicles interfaces.IVehicleRepository,
	labor interfaces.ILaborRepository,
	inventory interfaces.IInventoryRepository,
	orders interfaces.IOrderRepository,
	receivables interfaces.IReceivableRepository,
	notifier interfaces.INotifier,
	defaultPolicy entities.QuantityPolicy,
) *OrderUseCase {
	if !defaultPolicy.Valid() {
		defaultPolicy = entities.QuantityPolicyClamp
	}
	return &OrderUseCase{
		drafts:        drafts,
		vehicles:      vehicles,
		labor:         labor,
		inventory:     inventory,
		orders:        orders,
		receivables:   receivables,
		notifier:      notifier,
		defaultPolicy: defaultPolicy,
	}
}

func (u *OrderUseCase) OpenDraft(ctx context.Context, policy string) (entities.OrderDraft, error) {
	p := u.defaultPolicy
	if v := entities.QuantityPolicy(strings.TrimSpace(policy)); v.Valid() {
		p = v
	}
	draft := entities.NewOrderDraft(uuid.NewString(), p)
	u.drafts.Put(draft)
	log.Printf("[order][usecase] draft opened draft_id=%s policy=%s", draft.ID, draft.Policy)
	return snapshot(draft), nil
}

func (u *OrderUseCase) GetDraft(ctx context.Context, id string) (entities.OrderDraft, error) {
	return u.withDraft(id, func(d *entities.OrderDraft) error { return nil })
}

func (u *OrderUseCase) UpdateDraft(ctx context.Context, id string, input UpdateDraftInput) (entities.OrderDraft, error) {
	// Resolve the vehicle reference before taking the session lock;
	// unknown ids fail at the boundary instead of surfacing at submit.
	if input.VehicleID != nil {
		v, err := u.vehicles.GetByID(ctx, *input.VehicleID)
		if err != nil {
			return entities.OrderDraft{}, err
		}
		if v.ID == 0 {
			return entities.OrderDraft{}, ErrVehicleNotFound
		}
	}
	if input.Type != nil && !entities.OrderType(*input.Type).Valid() {
		return entities.OrderDraft{}, ErrInvalidOrderType
	}
	if input.Status != nil && !entities.OrderStatus(*input.Status).Valid() {
		return entities.OrderDraft{}, ErrInvalidOrderStatus
	}
	if input.Date != nil {
		if _, err := time.Parse(entities.DateLayout, *input.Date); err != nil {
			return entities.OrderDraft{}, ErrInvalidOrderDate
		}
	}

	return u.withDraft(id, func(d *entities.OrderDraft) error {
		if d.State != entities.DraftStateEditing {
			return entities.ErrDraftNotEditable
		}
		if input.Date != nil {
			d.Date = *input.Date
		}
		if input.VehicleID != nil {
			d.VehicleID = *input.VehicleID
		}
		if input.Type != nil {
			d.Type = entities.OrderType(*input.Type)
		}
		if input.Description != nil {
			d.Description = strings.TrimSpace(*input.Description)
		}
		if input.Status != nil {
			d.Status = entities.OrderStatus(*input.Status)
		}
		return nil
	})
}

func (u *OrderUseCase) CancelDraft(ctx context.Context, id string) error {
	if !u.drafts.Delete(id) {
		return ErrDraftNotFound
	}
	log.Printf("[order][usecase] draft discarded draft_id=%s", id)
	return nil
}

func (u *OrderUseCase) AddDraftLabor(ctx context.Context, draftID string, laborID int64) (entities.OrderDraft, error) {
	option, err := u.labor.GetByID(ctx, laborID)
	if err != nil {
		return entities.OrderDraft{}, err
	}
	if option.ID == 0 {
		return entities.OrderDraft{}, ErrLaborNotFound
	}
	return u.withDraft(draftID, func(d *entities.OrderDraft) error {
		return d.AddLabor(option)
	})
}

// CreateDraftLabor is the ad-hoc creation path: the new option is
// appended to the shared labor catalog and then auto-selected, so
// subsequent orders can reuse it.
func (u *OrderUseCase) CreateDraftLabor(ctx context.Context, draftID, name, price string) (entities.OrderDraft, error) {
	name, value, err := validateLaborOption(name, price)
	if err != nil {
		return entities.OrderDraft{}, err
	}
	created, err := u.labor.Create(ctx, entities.LaborOption{Name: name, UnitPrice: value})
	if err != nil {
		return entities.OrderDraft{}, err
	}
	log.Printf("[order][usecase] ad-hoc labor created labor_id=%d draft_id=%s", created.ID, draftID)
	return u.withDraft(draftID, func(d *entities.OrderDraft) error {
		return d.AddLabor(created)
	})
}

func (u *OrderUseCase) RemoveDraftLabor(ctx context.Context, draftID string, laborID int64) (entities.OrderDraft, error) {
	return u.withDraft(draftID, func(d *entities.OrderDraft) error {
		return d.RemoveLabor(laborID)
	})
}

func (u *OrderUseCase) AddDraftItem(ctx context.Context, draftID string, itemID int64, quantity int) (entities.OrderDraft, error) {
	item, err := u.inventory.GetByID(ctx, itemID)
	if err != nil {
		return entities.OrderDraft{}, err
	}
	if item.ID == 0 {
		return entities.OrderDraft{}, ErrItemNotFound
	}
	return u.withDraft(draftID, func(d *entities.OrderDraft) error {
		return d.AddItem(item, quantity)
	})
}

func (u *OrderUseCase) SetDraftItemQuantity(ctx context.Context, draftID string, itemID int64, quantity int) (entities.OrderDraft, error) {
	return u.withDraft(draftID, func(d *entities.OrderDraft) error {
		return d.SetQuantity(itemID, quantity)
	})
}

func (u *OrderUseCase) RemoveDraftItem(ctx context.Context, draftID string, itemID int64) (entities.OrderDraft, error) {
	return u.withDraft(draftID, func(d *entities.OrderDraft) error {
		return d.RemoveItem(itemID)
	})
}

// SubmitDraft runs the Editing -> Validating -> Submitted transition.
// On validation failure the draft returns to Editing with field errors
// and no side effects. On success the finalized order is persisted,
// consumed stock is decremented, a receivable is opened for the order
// total and one success message goes through the notifier.
func (u *OrderUseCase) SubmitDraft(ctx context.Context, draftID string) (entities.ServiceOrder, error) {
	var order entities.ServiceOrder

	found, err := u.drafts.With(draftID, func(d *entities.OrderDraft) error {
		if fields := d.Validate(); fields != nil {
			return &ValidationError{Fields: fields}
		}

		vehicle, err := u.vehicles.GetByID(ctx, d.VehicleID)
		if err != nil {
			d.State = entities.DraftStateEditing
			return err
		}
		if vehicle.ID == 0 {
			d.State = entities.DraftStateEditing
			return &ValidationError{Fields: map[string]string{"vehicle_id": "Selecione um veículo"}}
		}

		now := time.Now().UTC()
		candidate := d.ToOrder(uuid.NewString(), now)
		created, err := u.orders.Create(ctx, candidate)
		if err != nil {
			d.State = entities.DraftStateEditing
			return err
		}

		// Submission consumes stock. Failures here are logged, not
		// rolled back: the order record is the source of truth and a
		// stock correction can be applied manually.
		for _, line := range created.InventoryLines {
			item, err := u.inventory.GetByID(ctx, line.ItemID)
			if err != nil || item.ID == 0 {
				log.Printf("[order][usecase] stock decrement skipped order_id=%s item_id=%d err=%v", created.ID, line.ItemID, err)
				continue
			}
			remaining := item.AvailableQuantity - line.UsedQuantity
			if remaining < 0 {
				remaining = 0
			}
			if _, err := u.inventory.UpdateQuantity(ctx, line.ItemID, remaining); err != nil {
				log.Printf("[order][usecase] stock decrement failed order_id=%s item_id=%d err=%v", created.ID, line.ItemID, err)
			}
		}

		receivable := entities.Receivable{
			ID:          uuid.NewString(),
			Description: fmt.Sprintf("OS %s - %s", shortID(created.ID), created.Type),
			Customer:    vehicle.Owner,
			Amount:      created.TotalCost,
			DueDate:     created.Date,
			Status:      entities.FinanceStatusPendente,
			Reference:   fmt.Sprintf("OS #%s", shortID(created.ID)),
			OrderID:     created.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := u.receivables.Create(ctx, receivable); err != nil {
			log.Printf("[order][usecase] receivable create failed order_id=%s err=%v", created.ID, err)
		}

		d.MarkSubmitted()
		u.notifier.Success(ctx, "Serviço registrado com sucesso!")
		log.Printf("[order][usecase] draft submitted draft_id=%s order_id=%s total=%.2f", draftID, created.ID, created.TotalCost)
		order = created
		return nil
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !found {
		return entities.ServiceOrder{}, ErrDraftNotFound
	}

	// A submitted draft is terminal for that form instance.
	u.drafts.Delete(draftID)
	return order, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, search string) ([]entities.ServiceOrder, error) {
	all, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	if search = strings.TrimSpace(search); search == "" {
		return all, nil
	}
	out := make([]entities.ServiceOrder, 0, len(all))
	for _, o := range all {
		if matchesSearch(search, o.ID, string(o.Type), string(o.Status), o.Description) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) withDraft(id string, fn func(d *entities.OrderDraft) error) (entities.OrderDraft, error) {
	var snap entities.OrderDraft
	found, err := u.drafts.With(id, func(d *entities.OrderDraft) error {
		if err := fn(d); err != nil {
			return err
		}
		snap = snapshot(d)
		return nil
	})
	if err != nil {
		return entities.OrderDraft{}, err
	}
	if !found {
		return entities.OrderDraft{}, ErrDraftNotFound
	}
	return snap, nil
}

// snapshot copies the draft so callers outside the session lock never
// alias its slices.
func snapshot(d *entities.OrderDraft) entities.OrderDraft {
	out := *d
	out.Labor = append([]entities.LaborOption(nil), d.Labor...)
	out.Items = append([]entities.DraftInventoryLine(nil), d.Items...)
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
