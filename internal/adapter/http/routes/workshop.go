package routes

import (
	"oficina_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVehicles  = "/vehicles"
	PathLabor     = "/labor-options"
	PathInventory = "/inventory"
	PathDrafts    = "/order-drafts"
	PathOrders    = "/orders"
)

func addWorkshopRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, orderHandler *handlers.OrderHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", catalogHandler.RegisterVehicle)
		vehicles.GET("", catalogHandler.ListVehicles)
		vehicles.GET("/:id", catalogHandler.GetVehicle)
	}

	labor := rg.Group(PathLabor)
	{
		labor.POST("", catalogHandler.CreateLaborOption)
		labor.GET("", catalogHandler.ListLaborOptions)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.POST("", catalogHandler.CreateInventoryItem)
		inventory.GET("", catalogHandler.ListInventory)
		inventory.POST("/:id/adjustments", catalogHandler.AdjustInventory)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", orderHandler.OpenDraft)
		drafts.GET("/:id", orderHandler.GetDraft)
		drafts.PATCH("/:id", orderHandler.UpdateDraft)
		drafts.DELETE("/:id", orderHandler.CancelDraft)

		drafts.POST("/:id/labor", orderHandler.AddDraftLabor)
		drafts.POST("/:id/labor/new", orderHandler.CreateDraftLabor)
		drafts.DELETE("/:id/labor/:labor_id", orderHandler.RemoveDraftLabor)

		drafts.POST("/:id/items", orderHandler.AddDraftItem)
		drafts.PATCH("/:id/items/:item_id", orderHandler.SetDraftItemQuantity)
		drafts.DELETE("/:id/items/:item_id", orderHandler.RemoveDraftItem)

		drafts.POST("/:id/submit", orderHandler.SubmitDraft)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}
}
