package routes

import (
	"oficina_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathFiscalDocuments = "/fiscal-documents"

func addFiscalRoutes(rg *gin.RouterGroup, fiscalHandler *handlers.FiscalHandler) {
	documents := rg.Group(PathFiscalDocuments)
	{
		documents.POST("", fiscalHandler.IssueDocument)
		documents.GET("", fiscalHandler.ListDocuments)
		documents.GET("/:id", fiscalHandler.GetDocument)
		documents.PATCH("/:id/cancel", fiscalHandler.CancelDocument)
	}
}
