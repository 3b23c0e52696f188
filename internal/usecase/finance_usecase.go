package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"
)

var (
	ErrPayableNotFound            = errors.New("payable not found")
	ErrReceivableNotFound         = errors.New("receivable not found")
	ErrInvalidFinanceID           = errors.New("invalid finance entry id")
	ErrInvalidFinanceDescription  = errors.New("description is required")
	ErrInvalidFinanceAmount       = errors.New("amount must be positive")
	ErrInvalidFinanceDueDate      = errors.New("invalid due date")
	ErrEntryAlreadyPaid           = errors.New("entry already paid")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

type CreatePayableInput struct {
	Description   string
	Category      string
	Amount        float64
	DueDate       string
	PaymentMethod string
	Reference     string
}

type CreateReceivableInput struct {
	Description   string
	Customer      string
	Amount        float64
	DueDate       string
	PaymentMethod string
	Reference     string
}

// IFinanceUseCase covers accounts payable/receivable and the cash-flow
// summary. Receivable settlement charges the external payment gateway
// and records the provider response.
type IFinanceUseCase interface {
	CreatePayable(ctx context.Context, input CreatePayableInput) (entities.Payable, error)
	ListPayables(ctx context.Context, search string) ([]entities.Payable, error)
	MarkPayablePaid(ctx context.Context, id string) (entities.Payable, error)

	CreateReceivable(ctx context.Context, input CreateReceivableInput) (entities.Receivable, error)
	ListReceivables(ctx context.Context, search string) ([]entities.Receivable, error)
	SettleReceivable(ctx context.Context, id string, providerPayload json.RawMessage) (entities.Payment, error)

	CashFlowSummary(ctx context.Context) ([]entities.CashFlowEntry, error)
}

type FinanceUseCase struct {
	payables    interfaces.IPayableRepository
	receivables interfaces.IReceivableRepository
	payments    interfaces.IPaymentRepository
	gateway     interfaces.IPaymentGateway
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(
	payables interfaces.IPayableRepository,
	receivables interfaces.IReceivableRepository,
	payments interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
) *FinanceUseCase {
	return &FinanceUseCase{payables: payables, receivables: receivables, payments: payments, gateway: gateway}
}

func (u *FinanceUseCase) CreatePayable(ctx context.Context, input CreatePayableInput) (entities.Payable, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return entities.Payable{}, ErrInvalidFinanceDescription
	}
	if input.Amount <= 0 {
		return entities.Payable{}, ErrInvalidFinanceAmount
	}
	if _, err := time.Parse(entities.DateLayout, input.DueDate); err != nil {
		return entities.Payable{}, ErrInvalidFinanceDueDate
	}

	now := time.Now().UTC()
	p := entities.Payable{
		ID:            uuid.NewString(),
		Description:   description,
		Category:      strings.TrimSpace(input.Category),
		Amount:        input.Amount,
		DueDate:       input.DueDate,
		Status:        entities.FinanceStatusPendente,
		PaymentMethod: strings.TrimSpace(input.PaymentMethod),
		Reference:     strings.TrimSpace(input.Reference),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.payables.Create(ctx, p)
}

func (u *FinanceUseCase) ListPayables(ctx context.Context, search string) ([]entities.Payable, error) {
	all, err := u.payables.List(ctx)
	if err != nil {
		return nil, err
	}
	today := time.Now().UTC().Format(entities.DateLayout)
	search = strings.TrimSpace(search)
	out := make([]entities.Payable, 0, len(all))
	for _, p := range all {
		if search != "" && !matchesSearch(search, p.Description, p.Category, p.Reference) {
			continue
		}
		p.Status = p.EffectiveStatus(today)
		out = append(out, p)
	}
	return out, nil
}

func (u *FinanceUseCase) MarkPayablePaid(ctx context.Context, id string) (entities.Payable, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payable{}, ErrInvalidFinanceID
	}
	p, err := u.payables.GetByID(ctx, id)
	if err != nil {
		return entities.Payable{}, err
	}
	if p.ID == "" {
		return entities.Payable{}, ErrPayableNotFound
	}
	if p.Status == entities.FinanceStatusPago {
		return entities.Payable{}, ErrEntryAlreadyPaid
	}
	return u.payables.UpdateStatus(ctx, id, entities.FinanceStatusPago)
}

func (u *FinanceUseCase) CreateReceivable(ctx context.Context, input CreateReceivableInput) (entities.Receivable, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return entities.Receivable{}, ErrInvalidFinanceDescription
	}
	if input.Amount <= 0 {
		return entities.Receivable{}, ErrInvalidFinanceAmount
	}
	if _, err := time.Parse(entities.DateLayout, input.DueDate); err != nil {
		return entities.Receivable{}, ErrInvalidFinanceDueDate
	}

	now := time.Now().UTC()
	r := entities.Receivable{
		ID:            uuid.NewString(),
		Description:   description,
		Customer:      strings.TrimSpace(input.Customer),
		Amount:        input.Amount,
		DueDate:       input.DueDate,
		Status:        entities.FinanceStatusPendente,
		PaymentMethod: strings.TrimSpace(input.PaymentMethod),
		Reference:     strings.TrimSpace(input.Reference),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.receivables.Create(ctx, r)
}

func (u *FinanceUseCase) ListReceivables(ctx context.Context, search string) ([]entities.Receivable, error) {
	all, err := u.receivables.List(ctx)
	if err != nil {
		return nil, err
	}
	today := time.Now().UTC().Format(entities.DateLayout)
	search = strings.TrimSpace(search)
	out := make([]entities.Receivable, 0, len(all))
	for _, r := range all {
		if search != "" && !matchesSearch(search, r.Description, r.Customer, r.Reference) {
			continue
		}
		r.Status = r.EffectiveStatus(today)
		out = append(out, r)
	}
	return out, nil
}

// SettleReceivable charges the payment gateway for the receivable
// amount and marks the entry as paid. The receivable in the database is
// the source of truth for the charged amount; the caller payload only
// carries payment method and payer details.
func (u *FinanceUseCase) SettleReceivable(ctx context.Context, id string, providerPayload json.RawMessage) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidFinanceID
	}
	mockMode := isPaymentGatewayMockEnabled()
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			return entities.Payment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	r, err := u.receivables.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if r.ID == "" {
		return entities.Payment{}, ErrReceivableNotFound
	}
	if r.Status == entities.FinanceStatusPago {
		return entities.Payment{}, ErrEntryAlreadyPaid
	}

	// Basic linkage with the receivable when the caller didn't provide
	// it; the provider uses external_reference to reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = r.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Receivable %s", r.ID)
		}
		reqMap["transaction_amount"] = r.Amount
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	log.Printf("[finance][usecase] settling receivable receivable_id=%s amount=%.2f mock=%v", r.ID, r.Amount, mockMode)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Printf("[finance][usecase] payment gateway failed receivable_id=%s err=%v", r.ID, err)
		if isGatewayUnauthorized(err) {
			return entities.Payment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Payment{}, ErrPaymentGatewayBadRequest
		}
		return entities.Payment{}, err
	}
	log.Printf("[finance][usecase] payment gateway success receivable_id=%s provider_payment_id=%s provider_status=%s", r.ID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[finance][usecase] provider response unmarshal failed receivable_id=%s err=%v", r.ID, err)
	}

	payment := entities.Payment{
		ID:                 providerPaymentID,
		ReceivableID:       r.ID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.payments.Create(ctx, payment)
	if err != nil {
		return entities.Payment{}, err
	}

	if _, err := u.receivables.UpdateStatus(ctx, r.ID, entities.FinanceStatusPago); err != nil {
		log.Printf("[finance][usecase] receivable status update failed receivable_id=%s err=%v", r.ID, err)
	}
	return created, nil
}

// CashFlowSummary aggregates settled entries by month: paid receivables
// as inflow, paid payables as outflow.
func (u *FinanceUseCase) CashFlowSummary(ctx context.Context) ([]entities.CashFlowEntry, error) {
	receivables, err := u.receivables.List(ctx)
	if err != nil {
		return nil, err
	}
	payables, err := u.payables.List(ctx)
	if err != nil {
		return nil, err
	}

	byMonth := map[string]*entities.CashFlowEntry{}
	monthOf := func(date string) string {
		if len(date) >= 7 {
			return date[:7]
		}
		return date
	}
	entry := func(month string) *entities.CashFlowEntry {
		if e, ok := byMonth[month]; ok {
			return e
		}
		e := &entities.CashFlowEntry{Month: month}
		byMonth[month] = e
		return e
	}

	for _, r := range receivables {
		if r.Status == entities.FinanceStatusPago {
			entry(monthOf(r.DueDate)).Inflow += r.Amount
		}
	}
	for _, p := range payables {
		if p.Status == entities.FinanceStatusPago {
			entry(monthOf(p.DueDate)).Outflow += p.Amount
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]entities.CashFlowEntry, 0, len(months))
	for _, m := range months {
		e := byMonth[m]
		e.Inflow = math.Round(e.Inflow*100) / 100
		e.Outflow = math.Round(e.Outflow*100) / 100
		e.Balance = math.Round((e.Inflow-e.Outflow)*100) / 100
		out = append(out, *e)
	}
	return out, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`)
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`)
}
