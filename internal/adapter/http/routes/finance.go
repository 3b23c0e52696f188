package routes

import (
	"oficina_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayables    = "/payables"
	PathReceivables = "/receivables"
	PathCashFlow    = "/finance/cashflow"
)

func addFinanceRoutes(rg *gin.RouterGroup, financeHandler *handlers.FinanceHandler) {
	payables := rg.Group(PathPayables)
	{
		payables.POST("", financeHandler.CreatePayable)
		payables.GET("", financeHandler.ListPayables)
		payables.PATCH("/:id/pay", financeHandler.MarkPayablePaid)
	}

	receivables := rg.Group(PathReceivables)
	{
		receivables.POST("", financeHandler.CreateReceivable)
		receivables.GET("", financeHandler.ListReceivables)
		receivables.POST("/:id/payments", financeHandler.SettleReceivable)
	}

	rg.GET(PathCashFlow, financeHandler.CashFlowSummary)
}
