package request

// OpenDraftRequest optionally overrides the server-wide quantity policy
// for one draft. Empty or unknown values fall back to the default.
type OpenDraftRequest struct {
	Policy string `json:"policy"`
}

// UpdateDraftRequest carries partial updates to a draft's form fields.
// Only non-nil fields are applied, so clients can patch one field at a
// time the way the form does.
type UpdateDraftRequest struct {
	Date        *string `json:"date"`
	VehicleID   *int64  `json:"vehicle_id"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type AddDraftLaborRequest struct {
	LaborID int64 `json:"labor_id" binding:"required"`
}

// CreateDraftLaborRequest creates a labor option ad hoc and selects it
// into the draft in one step.
type CreateDraftLaborRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

type AddDraftItemRequest struct {
	ItemID   int64 `json:"item_id" binding:"required"`
	Quantity int   `json:"quantity"`
}

// ResolveQuantity defaults the requested quantity to 1 when the client
// omits it, matching the picker's single-click add.
func (r AddDraftItemRequest) ResolveQuantity() int {
	if r.Quantity <= 0 {
		return 1
	}
	return r.Quantity
}

type SetItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}
