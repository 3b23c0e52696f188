package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "oficina_api/internal/adapter/http/dto/request"
	response "oficina_api/internal/adapter/http/dto/response"
	"oficina_api/internal/usecase"
	"oficina_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFinancePayload = pkg.NewDomainErrorSimple("INVALID_FINANCE_INPUT", "Invalid finance payload", http.StatusBadRequest)

// FinanceHandler handles HTTP requests for accounts payable,
// receivable and the cash-flow summary.

type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

func (h *FinanceHandler) CreatePayable(c *gin.Context) {
	var payload request.CreatePayableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFinancePayload.HTTPStatus, errInvalidFinancePayload.ToHTTPError())
		return
	}

	payable, err := h.usecase.CreatePayable(c.Request.Context(), usecase.CreatePayableInput{
		Description:   payload.Description,
		Category:      payload.Category,
		Amount:        payload.Amount,
		DueDate:       payload.DueDate,
		PaymentMethod: payload.PaymentMethod,
		Reference:     payload.Reference,
	})
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayable(payable))
}

func (h *FinanceHandler) ListPayables(c *gin.Context) {
	payables, err := h.usecase.ListPayables(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayables(payables))
}

func (h *FinanceHandler) MarkPayablePaid(c *gin.Context) {
	payable, err := h.usecase.MarkPayablePaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayable(payable))
}

func (h *FinanceHandler) CreateReceivable(c *gin.Context) {
	var payload request.CreateReceivableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFinancePayload.HTTPStatus, errInvalidFinancePayload.ToHTTPError())
		return
	}

	receivable, err := h.usecase.CreateReceivable(c.Request.Context(), usecase.CreateReceivableInput{
		Description:   payload.Description,
		Customer:      payload.Customer,
		Amount:        payload.Amount,
		DueDate:       payload.DueDate,
		PaymentMethod: payload.PaymentMethod,
		Reference:     payload.Reference,
	})
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReceivable(receivable))
}

func (h *FinanceHandler) ListReceivables(c *gin.Context) {
	receivables, err := h.usecase.ListReceivables(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceivables(receivables))
}

// SettleReceivable charges the payment provider and records the
// resulting payment against the receivable.
func (h *FinanceHandler) SettleReceivable(c *gin.Context) {
	receivableID := c.Param("id")
	log.Printf("[finance][handler] settle start receivable_id=%s", receivableID)
	mockMode := isPaymentGatewayMockEnabled()
	providerPayload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[finance][handler] payload invalid in mock mode; fallback to empty payload receivable_id=%s err=%v", receivableID, err)
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[finance][handler] invalid payload receivable_id=%s err=%v", receivableID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	payment, err := h.usecase.SettleReceivable(c.Request.Context(), receivableID, providerPayload)
	if err != nil {
		log.Printf("[finance][handler] settle failed receivable_id=%s err=%v", receivableID, err)
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[finance][handler] settle success receivable_id=%s payment_id=%s status=%s", receivableID, payment.ID, payment.Status)

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func (h *FinanceHandler) CashFlowSummary(c *gin.Context) {
	entries, err := h.usecase.CashFlowSummary(c.Request.Context())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCashFlow(entries))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapFinanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFinanceID),
		errors.Is(err, usecase.ErrInvalidFinanceDescription),
		errors.Is(err, usecase.ErrInvalidFinanceAmount),
		errors.Is(err, usecase.ErrInvalidFinanceDueDate),
		errors.Is(err, usecase.ErrInvalidProviderPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPayableNotFound):
		return pkg.NewDomainErrorSimple("PAYABLE_NOT_FOUND", "Payable not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReceivableNotFound):
		return pkg.NewDomainErrorSimple("RECEIVABLE_NOT_FOUND", "Receivable not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEntryAlreadyPaid):
		return pkg.NewDomainErrorSimple("ENTRY_ALREADY_PAID", "Entry already settled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
