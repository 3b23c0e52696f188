package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_api/internal/adapter/http/dto/request"
	response "oficina_api/internal/adapter/http/dto/response"
	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase"
	"oficina_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for order drafts and submitted
// service orders. Every draft mutation returns the full draft view so
// the form can re-render selections and total from one response.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) OpenDraft(c *gin.Context) {
	var payload request.OpenDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
			return
		}
	}

	draft, err := h.usecase.OpenDraft(c.Request.Context(), payload.Policy)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDraft(draft))
}

func (h *OrderHandler) GetDraft(c *gin.Context) {
	draft, err := h.usecase.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *OrderHandler) UpdateDraft(c *gin.Context) {
	var payload request.UpdateDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.UpdateDraft(c.Request.Context(), c.Param("id"), usecase.UpdateDraftInput{
		Date:        payload.Date,
		VehicleID:   payload.VehicleID,
		Type:        payload.Type,
		Description: payload.Description,
		Status:      payload.Status,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *OrderHandler) CancelDraft(c *gin.Context) {
	if err := h.usecase.CancelDraft(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) AddDraftLabor(c *gin.Context) {
	var payload request.AddDraftLaborRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.AddDraftLabor(c.Request.Context(), c.Param("id"), payload.LaborID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// CreateDraftLabor registers a new labor option and selects it into the
// draft in one step, mirroring the "add custom service" form action.
func (h *OrderHandler) CreateDraftLabor(c *gin.Context) {
	var payload request.CreateDraftLaborRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.CreateDraftLabor(c.Request.Context(), c.Param("id"), payload.Name, payload.Price)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *OrderHandler) RemoveDraftLabor(c *gin.Context) {
	laborID, ok := paramInt64(c, "labor_id")
	if !ok {
		return
	}

	draft, err := h.usecase.RemoveDraftLabor(c.Request.Context(), c.Param("id"), laborID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *OrderHandler) AddDraftItem(c *gin.Context) {
	var payload request.AddDraftItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.AddDraftItem(c.Request.Context(), c.Param("id"), payload.ItemID, payload.ResolveQuantity())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *OrderHandler) SetDraftItemQuantity(c *gin.Context) {
	itemID, ok := paramInt64(c, "item_id")
	if !ok {
		return
	}

	var payload request.SetItemQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.SetDraftItemQuantity(c.Request.Context(), c.Param("id"), itemID, payload.Quantity)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *OrderHandler) RemoveDraftItem(c *gin.Context) {
	itemID, ok := paramInt64(c, "item_id")
	if !ok {
		return
	}

	draft, err := h.usecase.RemoveDraftItem(c.Request.Context(), c.Param("id"), itemID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *OrderHandler) SubmitDraft(c *gin.Context) {
	draftID := c.Param("id")
	log.Printf("[order][handler] submit start draft_id=%s", draftID)

	order, err := h.usecase.SubmitDraft(c.Request.Context(), draftID)
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			log.Printf("[order][handler] submit rejected draft_id=%s fields=%d", draftID, len(vErr.Fields))
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"code":    "VALIDATION_FAILED",
				"message": "Order validation failed",
				"fields":  vErr.Fields,
			})
			return
		}
		log.Printf("[order][handler] submit failed draft_id=%s err=%v", draftID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] submit success draft_id=%s order_id=%s total=%.2f", draftID, order.ID, order.TotalCost)

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderType),
		errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrInvalidOrderDate),
		errors.Is(err, usecase.ErrInvalidLaborName),
		errors.Is(err, usecase.ErrInvalidLaborPrice):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLaborNotFound):
		return pkg.NewDomainErrorSimple("LABOR_NOT_FOUND", "Labor option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrItemLineNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_SELECTED", "Item is not selected in this draft", http.StatusNotFound)
	case errors.Is(err, entities.ErrDraftNotEditable):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_EDITABLE", "Draft is no longer editable", http.StatusConflict)
	case errors.Is(err, entities.ErrItemOutOfStock):
		return pkg.NewDomainErrorSimple("ITEM_OUT_OF_STOCK", "Item is out of stock", http.StatusConflict)
	case errors.Is(err, entities.ErrItemFullyConsumed):
		return pkg.NewDomainErrorSimple("ITEM_FULLY_CONSUMED", "Selected quantity already equals available stock", http.StatusConflict)
	case errors.Is(err, entities.ErrQuantityOutOfRange):
		return pkg.NewDomainErrorSimple("QUANTITY_OUT_OF_RANGE", "Quantity out of range for available stock", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
