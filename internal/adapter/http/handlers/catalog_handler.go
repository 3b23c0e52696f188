package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "oficina_api/internal/adapter/http/dto/request"
	response "oficina_api/internal/adapter/http/dto/response"
	"oficina_api/internal/usecase"
	"oficina_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
	errInvalidNumericID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid numeric id", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the shared catalogs the
// order builder selects from: vehicles, labor options and inventory.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) RegisterVehicle(c *gin.Context) {
	var payload request.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.RegisterVehicle(c.Request.Context(), usecase.RegisterVehicleInput{
		Plate: payload.Plate,
		Make:  payload.Make,
		Model: payload.Model,
		Year:  payload.Year,
		Owner: payload.Owner,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.usecase.ListVehicles(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *CatalogHandler) GetVehicle(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.usecase.GetVehicle(c.Request.Context(), id)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *CatalogHandler) CreateLaborOption(c *gin.Context) {
	var payload request.CreateLaborRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	option, err := h.usecase.CreateLaborOption(c.Request.Context(), payload.Name, payload.Price)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLaborOption(option))
}

func (h *CatalogHandler) ListLaborOptions(c *gin.Context) {
	options, err := h.usecase.ListLaborOptions(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLaborOptions(options))
}

func (h *CatalogHandler) CreateInventoryItem(c *gin.Context) {
	var payload request.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.CreateInventoryItem(c.Request.Context(), usecase.CreateInventoryItemInput{
		Name:        payload.Name,
		Category:    payload.Category,
		UnitPrice:   payload.UnitPrice,
		Quantity:    payload.Quantity,
		MinQuantity: payload.MinQuantity,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInventoryItem(item))
}

func (h *CatalogHandler) ListInventory(c *gin.Context) {
	items, err := h.usecase.ListInventory(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItems(items))
}

func (h *CatalogHandler) AdjustInventory(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	var payload request.AdjustInventoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.AdjustInventory(c.Request.Context(), id, usecase.AdjustmentKind(payload.Kind), payload.Quantity, payload.Reason)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

func paramInt64(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidNumericID.HTTPStatus, errInvalidNumericID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlate),
		errors.Is(err, usecase.ErrInvalidMake),
		errors.Is(err, usecase.ErrInvalidModel),
		errors.Is(err, usecase.ErrInvalidYear),
		errors.Is(err, usecase.ErrInvalidOwner),
		errors.Is(err, usecase.ErrInvalidLaborName),
		errors.Is(err, usecase.ErrInvalidLaborPrice),
		errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidItemCategory),
		errors.Is(err, usecase.ErrInvalidItemPrice),
		errors.Is(err, usecase.ErrInvalidItemQuantity),
		errors.Is(err, usecase.ErrInvalidAdjustmentKind),
		errors.Is(err, usecase.ErrInvalidAdjustmentQty):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLaborNotFound):
		return pkg.NewDomainErrorSimple("LABOR_NOT_FOUND", "Labor option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
