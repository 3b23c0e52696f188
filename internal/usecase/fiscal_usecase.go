package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"
)

var (
	ErrInvalidDocumentType     = errors.New("invalid fiscal document type")
	ErrInvalidCustomerName     = errors.New("customer name must have at least 3 characters")
	ErrInvalidCustomerDocument = errors.New("customer document must have at least 11 characters")
	ErrDocumentNotFound        = errors.New("fiscal document not found")
	ErrInvalidDocumentID       = errors.New("invalid fiscal document id")
	ErrEmptyDocument           = errors.New("fiscal document has no lines")
	ErrDocumentCancelled       = errors.New("fiscal document already cancelled")
)

type DocumentItemInput struct {
	ItemID   int64
	Quantity int
}

type DocumentServiceInput struct {
	LaborID int64
}

type IssueDocumentInput struct {
	Type             string
	CustomerName     string
	CustomerDocument string
	VehicleID        int64
	OrderID          string
	Items            []DocumentItemInput
	Services         []DocumentServiceInput
}

// IFiscalUseCase issues and cancels fiscal documents. Numbering is a
// stubbed sequential counter; tax calculation and government API
// integration are out of scope.
type IFiscalUseCase interface {
	IssueDocument(ctx context.Context, input IssueDocumentInput) (entities.FiscalDocument, error)
	GetDocument(ctx context.Context, id string) (entities.FiscalDocument, error)
	ListDocuments(ctx context.Context, docType, search string) ([]entities.FiscalDocument, error)
	CancelDocument(ctx context.Context, id string) (entities.FiscalDocument, error)
}

type FiscalUseCase struct {
	documents interfaces.IFiscalDocumentRepository
	orders    interfaces.IOrderRepository
	inventory interfaces.IInventoryRepository
	labor     interfaces.ILaborRepository
}

var _ IFiscalUseCase = (*FiscalUseCase)(nil)

func NewFiscalUseCase(
	documents interfaces.IFiscalDocumentRepository,
	orders interfaces.IOrderRepository,
	inventory interfaces.IInventoryRepository,
	labor interfaces.ILaborRepository,
) *FiscalUseCase {
	return &FiscalUseCase{documents: documents, orders: orders, inventory: inventory, labor: labor}
}

func (u *FiscalUseCase) IssueDocument(ctx context.Context, input IssueDocumentInput) (entities.FiscalDocument, error) {
	docType := entities.FiscalDocumentType(strings.TrimSpace(input.Type))
	if !docType.Valid() {
		return entities.FiscalDocument{}, ErrInvalidDocumentType
	}
	name := strings.TrimSpace(input.CustomerName)
	if utf8.RuneCountInString(name) < 3 {
		return entities.FiscalDocument{}, ErrInvalidCustomerName
	}
	document := strings.TrimSpace(input.CustomerDocument)
	if utf8.RuneCountInString(document) < 11 {
		return entities.FiscalDocument{}, ErrInvalidCustomerDocument
	}

	var items, services []entities.DocumentLine
	orderID := strings.TrimSpace(input.OrderID)
	if orderID != "" {
		order, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return entities.FiscalDocument{}, err
		}
		if order.ID == "" {
			return entities.FiscalDocument{}, ErrOrderNotFound
		}
		for _, line := range order.InventoryLines {
			items = append(items, entities.DocumentLine{Name: line.Name, Quantity: line.UsedQuantity, UnitPrice: line.UnitPrice})
		}
		for _, line := range order.LaborLines {
			services = append(services, entities.DocumentLine{Name: line.Name, Quantity: 1, UnitPrice: line.UnitPrice})
		}
	} else {
		var err error
		items, err = u.resolveItems(ctx, input.Items)
		if err != nil {
			return entities.FiscalDocument{}, err
		}
		services, err = u.resolveServices(ctx, input.Services)
		if err != nil {
			return entities.FiscalDocument{}, err
		}
	}
	if len(items) == 0 && len(services) == 0 {
		return entities.FiscalDocument{}, ErrEmptyDocument
	}

	value := 0.0
	for _, line := range items {
		value += line.UnitPrice * float64(line.Quantity)
	}
	for _, line := range services {
		value += line.UnitPrice * float64(line.Quantity)
	}
	value = math.Round(value*100) / 100

	seq, err := u.documents.NextNumber(ctx, docType)
	if err != nil {
		return entities.FiscalDocument{}, err
	}

	now := time.Now().UTC()
	doc := entities.FiscalDocument{
		ID:               uuid.NewString(),
		Number:           fmt.Sprintf("%06d", seq),
		Type:             docType,
		Date:             now.Format(entities.DateLayout),
		CustomerName:     name,
		CustomerDocument: document,
		VehicleID:        input.VehicleID,
		OrderID:          orderID,
		Value:            value,
		Status:           entities.FiscalDocumentStatusEmitida,
		Items:            items,
		Services:         services,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.documents.Create(ctx, doc)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	log.Printf("[fiscal][usecase] document issued id=%s type=%s number=%s value=%.2f", created.ID, created.Type, created.Number, created.Value)
	return created, nil
}

// resolveItems dedupes by item id, summing quantities. Fiscal lines are
// not bounded by stock; the document records what was billed, not what
// remains on the shelf.
func (u *FiscalUseCase) resolveItems(ctx context.Context, inputs []DocumentItemInput) ([]entities.DocumentLine, error) {
	var lines []entities.DocumentLine
	index := map[int64]int{}
	for _, in := range inputs {
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		if pos, ok := index[in.ItemID]; ok {
			lines[pos].Quantity += qty
			continue
		}
		item, err := u.inventory.GetByID(ctx, in.ItemID)
		if err != nil {
			return nil, err
		}
		if item.ID == 0 {
			return nil, ErrItemNotFound
		}
		index[in.ItemID] = len(lines)
		lines = append(lines, entities.DocumentLine{Name: item.Name, Quantity: qty, UnitPrice: item.UnitPrice})
	}
	return lines, nil
}

func (u *FiscalUseCase) resolveServices(ctx context.Context, inputs []DocumentServiceInput) ([]entities.DocumentLine, error) {
	var lines []entities.DocumentLine
	seen := map[int64]bool{}
	for _, in := range inputs {
		if seen[in.LaborID] {
			continue
		}
		option, err := u.labor.GetByID(ctx, in.LaborID)
		if err != nil {
			return nil, err
		}
		if option.ID == 0 {
			return nil, ErrLaborNotFound
		}
		seen[in.LaborID] = true
		lines = append(lines, entities.DocumentLine{Name: option.Name, Quantity: 1, UnitPrice: option.UnitPrice})
	}
	return lines, nil
}

func (u *FiscalUseCase) GetDocument(ctx context.Context, id string) (entities.FiscalDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FiscalDocument{}, ErrInvalidDocumentID
	}
	doc, err := u.documents.GetByID(ctx, id)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if doc.ID == "" {
		return entities.FiscalDocument{}, ErrDocumentNotFound
	}
	return doc, nil
}

func (u *FiscalUseCase) ListDocuments(ctx context.Context, docType, search string) ([]entities.FiscalDocument, error) {
	all, err := u.documents.List(ctx)
	if err != nil {
		return nil, err
	}
	docType = strings.TrimSpace(docType)
	search = strings.TrimSpace(search)
	out := make([]entities.FiscalDocument, 0, len(all))
	for _, doc := range all {
		if docType != "" && string(doc.Type) != docType {
			continue
		}
		if search != "" && !matchesSearch(search, doc.Number, doc.CustomerName, doc.CustomerDocument) {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

func (u *FiscalUseCase) CancelDocument(ctx context.Context, id string) (entities.FiscalDocument, error) {
	doc, err := u.GetDocument(ctx, id)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if doc.Status == entities.FiscalDocumentStatusCancelada {
		return entities.FiscalDocument{}, ErrDocumentCancelled
	}
	return u.documents.UpdateStatus(ctx, doc.ID, entities.FiscalDocumentStatusCancelada)
}
