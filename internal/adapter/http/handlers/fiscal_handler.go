package handlers

import (
	"errors"
	"net/http"

	request "oficina_api/internal/adapter/http/dto/request"
	response "oficina_api/internal/adapter/http/dto/response"
	"oficina_api/internal/usecase"
	"oficina_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid fiscal document payload", http.StatusBadRequest)

// FiscalHandler handles HTTP requests for fiscal document emission.

type FiscalHandler struct {
	usecase usecase.IFiscalUseCase
}

func NewFiscalHandler(uc usecase.IFiscalUseCase) *FiscalHandler {
	return &FiscalHandler{usecase: uc}
}

func (h *FiscalHandler) IssueDocument(c *gin.Context) {
	var payload request.IssueDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.IssueDocument(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapFiscalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFiscalDocument(doc))
}

func (h *FiscalHandler) GetDocument(c *gin.Context) {
	doc, err := h.usecase.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFiscalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFiscalDocument(doc))
}

func (h *FiscalHandler) ListDocuments(c *gin.Context) {
	docs, err := h.usecase.ListDocuments(c.Request.Context(), c.Query("type"), c.Query("search"))
	if err != nil {
		appErr := mapFiscalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFiscalDocuments(docs))
}

func (h *FiscalHandler) CancelDocument(c *gin.Context) {
	doc, err := h.usecase.CancelDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFiscalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFiscalDocument(doc))
}

func mapFiscalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentType),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidCustomerDocument),
		errors.Is(err, usecase.ErrInvalidDocumentID),
		errors.Is(err, usecase.ErrEmptyDocument):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Fiscal document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLaborNotFound):
		return pkg.NewDomainErrorSimple("LABOR_NOT_FOUND", "Labor option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentCancelled):
		return pkg.NewDomainErrorSimple("DOCUMENT_ALREADY_CANCELLED", "Fiscal document already cancelled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
