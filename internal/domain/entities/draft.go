package entities

import (
	"errors"
	"math"
	"time"
)

// QuantityPolicy decides what happens when a requested part quantity
// falls outside [1, available stock]. Clamp coerces into range
// silently; Strict rejects the operation and leaves the draft
// untouched.
type QuantityPolicy string

const (
	QuantityPolicyClamp  QuantityPolicy = "clamp"
	QuantityPolicyStrict QuantityPolicy = "strict"
)

func (p QuantityPolicy) Valid() bool {
	return p == QuantityPolicyClamp || p == QuantityPolicyStrict
}

// DraftState is the draft form lifecycle. Editing is the only state
// that accepts selector mutations; Submitted is terminal.
type DraftState string

const (
	DraftStateEditing    DraftState = "editing"
	DraftStateValidating DraftState = "validating"
	DraftStateSubmitted  DraftState = "submitted"
)

var (
	ErrDraftNotEditable   = errors.New("draft is not editable")
	ErrItemOutOfStock     = errors.New("item is out of stock")
	ErrItemFullyConsumed  = errors.New("selected quantity already equals available stock")
	ErrQuantityOutOfRange = errors.New("quantity out of range")
	ErrItemLineNotFound   = errors.New("item is not selected")
)

// DraftInventoryLine is a quantity-bounded parts selection inside a
// draft. Invariant: 1 <= UsedQuantity <= Item.AvailableQuantity.
type DraftInventoryLine struct {
	Item         InventoryItem `json:"item"`
	UsedQuantity int           `json:"used_quantity"`
}

// OrderDraft is an in-progress, unpersisted service order.
//
// The draft owns the composed selection state: labor lines (no
// quantity, at most one per labor id) and inventory lines (at most one
// per item id, quantity bounded by stock). Both sets keep insertion
// order. TotalCost is never stored; Total() recomputes it from the
// selections so it cannot drift.
type OrderDraft struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	VehicleID   int64       `json:"vehicle_id"`
	Type        OrderType   `json:"type"`
	Description string      `json:"description"`
	Status      OrderStatus `json:"status"`

	Policy QuantityPolicy `json:"policy"`
	State  DraftState     `json:"state"`

	Labor []LaborOption        `json:"labor"`
	Items []DraftInventoryLine `json:"items"`

	CreatedAt time.Time `json:"created_at"`
}

func NewOrderDraft(id string, policy QuantityPolicy) *OrderDraft {
	if !policy.Valid() {
		policy = QuantityPolicyClamp
	}
	return &OrderDraft{
		ID:        id,
		Date:      time.Now().UTC().Format(DateLayout),
		Status:    OrderStatusAgendado,
		Policy:    policy,
		State:     DraftStateEditing,
		CreatedAt: time.Now().UTC(),
	}
}

func (d *OrderDraft) editable() error {
	if d.State != DraftStateEditing {
		return ErrDraftNotEditable
	}
	return nil
}

// AddLabor appends the option to the labor set. Adding an option that
// is already selected is a no-op.
func (d *OrderDraft) AddLabor(option LaborOption) error {
	if err := d.editable(); err != nil {
		return err
	}
	for _, l := range d.Labor {
		if l.ID == option.ID {
			return nil
		}
	}
	d.Labor = append(d.Labor, option)
	return nil
}

// RemoveLabor removes the matching entry, preserving the order of the
// remaining ones. Absent ids are a no-op.
func (d *OrderDraft) RemoveLabor(laborID int64) error {
	if err := d.editable(); err != nil {
		return err
	}
	for i, l := range d.Labor {
		if l.ID == laborID {
			d.Labor = append(d.Labor[:i], d.Labor[i+1:]...)
			return nil
		}
	}
	return nil
}

// AddItem selects quantity units of the item, merging into an existing
// line when the item is already selected. The resulting quantity is
// bounded by available stock; under the strict policy an out-of-bounds
// request fails instead of clamping. Exhausted items (zero stock, or a
// line already at the ceiling) never change state.
func (d *OrderDraft) AddItem(item InventoryItem, quantity int) error {
	if err := d.editable(); err != nil {
		return err
	}
	if quantity < 1 {
		quantity = 1
	}
	if item.AvailableQuantity == 0 {
		if d.Policy == QuantityPolicyStrict {
			return ErrItemOutOfStock
		}
		return nil
	}

	for i := range d.Items {
		line := &d.Items[i]
		if line.Item.ID != item.ID {
			continue
		}
		if line.UsedQuantity >= line.Item.AvailableQuantity {
			if d.Policy == QuantityPolicyStrict {
				return ErrItemFullyConsumed
			}
			return nil
		}
		requested := line.UsedQuantity + quantity
		if requested > line.Item.AvailableQuantity {
			if d.Policy == QuantityPolicyStrict {
				return ErrQuantityOutOfRange
			}
			requested = line.Item.AvailableQuantity
		}
		line.UsedQuantity = requested
		return nil
	}

	used := quantity
	if used > item.AvailableQuantity {
		if d.Policy == QuantityPolicyStrict {
			return ErrQuantityOutOfRange
		}
		used = item.AvailableQuantity
	}
	d.Items = append(d.Items, DraftInventoryLine{Item: item, UsedQuantity: used})
	return nil
}

// RemoveItem deletes the line entirely regardless of quantity.
func (d *OrderDraft) RemoveItem(itemID int64) error {
	if err := d.editable(); err != nil {
		return err
	}
	for i, line := range d.Items {
		if line.Item.ID == itemID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetQuantity sets the line quantity, coercing into [1, available].
// A zero request floors at 1 rather than removing the line; removal is
// always explicit through RemoveItem. Under the strict policy an
// out-of-range value is rejected.
func (d *OrderDraft) SetQuantity(itemID int64, quantity int) error {
	if err := d.editable(); err != nil {
		return err
	}
	for i := range d.Items {
		line := &d.Items[i]
		if line.Item.ID != itemID {
			continue
		}
		if quantity < 1 || quantity > line.Item.AvailableQuantity {
			if d.Policy == QuantityPolicyStrict {
				return ErrQuantityOutOfRange
			}
			if quantity < 1 {
				quantity = 1
			} else {
				quantity = line.Item.AvailableQuantity
			}
		}
		line.UsedQuantity = quantity
		return nil
	}
	return ErrItemLineNotFound
}

// Total recomputes the order total from scratch: the sum of labor
// prices plus price times used quantity for each parts line, rounded
// to 2 decimal places. It is a pure function of the selections and is
// idempotent by construction.
func (d *OrderDraft) Total() float64 {
	total := 0.0
	for _, l := range d.Labor {
		total += l.UnitPrice
	}
	for _, line := range d.Items {
		total += line.Item.UnitPrice * float64(line.UsedQuantity)
	}
	return math.Round(total*100) / 100
}

// Validate runs the field-level checks of the submission state machine
// (Editing -> Validating -> Submitted, or back to Editing on failure).
// A nil map means the draft is valid and left in Validating; otherwise
// the per-field messages are returned and the draft stays editable.
func (d *OrderDraft) Validate() map[string]string {
	if d.State == DraftStateSubmitted {
		return map[string]string{"state": "ordem de serviço já registrada"}
	}
	d.State = DraftStateValidating

	fields := map[string]string{}
	if d.Date == "" {
		fields["date"] = "A data é obrigatória"
	} else if _, err := time.Parse(DateLayout, d.Date); err != nil {
		fields["date"] = "A data é inválida"
	}
	if d.VehicleID <= 0 {
		fields["vehicle_id"] = "Selecione um veículo"
	}
	if !d.Type.Valid() {
		fields["type"] = "Selecione o tipo de serviço"
	}
	if !d.Status.Valid() {
		fields["status"] = "Selecione o status do serviço"
	}
	if d.Total() <= 0 {
		fields["cost"] = "Informe o valor do serviço"
	}

	if len(fields) > 0 {
		d.State = DraftStateEditing
		return fields
	}
	return nil
}

// MarkSubmitted finalizes the draft after a successful Validate and
// hand-off to persistence.
func (d *OrderDraft) MarkSubmitted() {
	d.State = DraftStateSubmitted
}

// ToOrder serializes the draft into the finalized order record.
func (d *OrderDraft) ToOrder(orderID string, now time.Time) ServiceOrder {
	labor := make([]OrderLaborLine, 0, len(d.Labor))
	for _, l := range d.Labor {
		labor = append(labor, OrderLaborLine{LaborID: l.ID, Name: l.Name, UnitPrice: l.UnitPrice})
	}
	items := make([]OrderInventoryLine, 0, len(d.Items))
	for _, line := range d.Items {
		items = append(items, OrderInventoryLine{
			ItemID:       line.Item.ID,
			Name:         line.Item.Name,
			UnitPrice:    line.Item.UnitPrice,
			UsedQuantity: line.UsedQuantity,
		})
	}
	return ServiceOrder{
		ID:             orderID,
		Date:           d.Date,
		VehicleID:      d.VehicleID,
		Type:           d.Type,
		Description:    d.Description,
		Status:         d.Status,
		TotalCost:      d.Total(),
		LaborLines:     labor,
		InventoryLines: items,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
