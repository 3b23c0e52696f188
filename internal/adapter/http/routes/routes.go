package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "oficina_api/docs" // This will be auto-generated
	"oficina_api/internal/adapter/http/handlers"
	"oficina_api/internal/adapter/persistence/memory"
	repository2 "oficina_api/internal/adapter/persistence/repository"
	"oficina_api/internal/domain/entities"
	"oficina_api/internal/infrastructure/database"
	"oficina_api/internal/infrastructure/notify"
	"oficina_api/internal/infrastructure/payments"
	"oficina_api/internal/usecase"
	"oficina_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

type repositories struct {
	vehicles    interfaces.IVehicleRepository
	labor       interfaces.ILaborRepository
	inventory   interfaces.IInventoryRepository
	orders      interfaces.IOrderRepository
	documents   interfaces.IFiscalDocumentRepository
	payables    interfaces.IPayableRepository
	receivables interfaces.IReceivableRepository
	payments    interfaces.IPaymentRepository
}

func getRoutes() {
	repos := buildRepositories()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	defaultPolicy := entities.QuantityPolicy(strings.ToLower(strings.TrimSpace(os.Getenv("QUANTITY_POLICY"))))

	catalogUseCase := usecase.NewCatalogUseCase(repos.vehicles, repos.labor, repos.inventory)
	orderUseCase := usecase.NewOrderUseCase(
		usecase.NewDraftStore(),
		repos.vehicles,
		repos.labor,
		repos.inventory,
		repos.orders,
		repos.receivables,
		notify.NewLogNotifier(),
		defaultPolicy,
	)
	fiscalUseCase := usecase.NewFiscalUseCase(repos.documents, repos.orders, repos.inventory, repos.labor)
	financeUseCase := usecase.NewFinanceUseCase(repos.payables, repos.receivables, repos.payments, paymentGateway)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	fiscalHandler := handlers.NewFiscalHandler(fiscalUseCase)
	financeHandler := handlers.NewFinanceHandler(financeUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, catalogHandler, orderHandler)
	addFiscalRoutes(v1, fiscalHandler)
	addFinanceRoutes(v1, financeHandler)
}

// buildRepositories picks the persistence driver. "memory" keeps
// everything in-process and seeds the demo catalogs; anything else
// connects to DynamoDB.
func buildRepositories() repositories {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("REPOSITORY_DRIVER")))
	if driver == "memory" {
		vehicles := memory.NewVehicleRepository()
		labor := memory.NewLaborRepository()
		inventory := memory.NewInventoryRepository()
		if err := memory.Seed(context.Background(), vehicles, labor, inventory); err != nil {
			log.Fatalf("Failed to seed memory repositories: %v", err)
		}
		log.Printf("[routes] using in-memory repositories (seeded)")
		return repositories{
			vehicles:    vehicles,
			labor:       labor,
			inventory:   inventory,
			orders:      memory.NewOrderRepository(),
			documents:   memory.NewFiscalDocumentRepository(),
			payables:    memory.NewPayableRepository(),
			receivables: memory.NewReceivableRepository(),
			payments:    memory.NewPaymentRepository(),
		}
	}

	ddb := database.ConnectDynamoDB()
	log.Printf("[routes] using DynamoDB repositories")
	return repositories{
		vehicles:    repository2.NewVehicleDynamoRepository(ddb),
		labor:       repository2.NewLaborDynamoRepository(ddb),
		inventory:   repository2.NewInventoryDynamoRepository(ddb),
		orders:      repository2.NewOrderDynamoRepository(ddb),
		documents:   repository2.NewFiscalDynamoRepository(ddb),
		payables:    repository2.NewPayableDynamoRepository(ddb),
		receivables: repository2.NewReceivableDynamoRepository(ddb),
		payments:    repository2.NewPaymentDynamoRepository(ddb),
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
