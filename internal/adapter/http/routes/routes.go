package routes

import (
	"os"
	"time"

	_ "tukangku/docs" // This will be auto-generated
	"tukangku/internal/adapter/http/handlers"
	"tukangku/internal/adapter/http/middleware"
	repository2 "tukangku/internal/adapter/persistence/repository"
	"tukangku/internal/infrastructure/auth"
	"tukangku/internal/infrastructure/database"
	"tukangku/internal/infrastructure/notification"
	"tukangku/internal/infrastructure/payments"
	"tukangku/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	walletRepo := repository2.NewWalletDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	voucherRepo := repository2.NewVoucherDynamoRepository(ddb)

	gateway, err := payments.NewMidtransGateway(os.Getenv("MIDTRANS_SERVER_KEY"))
	if err != nil {
		logrus.Fatalf("payment gateway not configured: %v", err)
	}

	notifier := notification.NewLogNotifier()
	tokens := auth.NewTokenManager(getenvDefault("JWT_SECRET", "local-dev-secret"))

	orderUseCase := usecase.NewOrderUseCase(orderRepo, walletRepo, serviceRepo, voucherRepo, gateway, notifier)
	settlementUseCase := usecase.NewSettlementUseCase(orderRepo, gateway, notifier)
	walletUseCase := usecase.NewWalletUseCase(walletRepo, notifier)
	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(settlementUseCase)
	walletHandler := handlers.NewWalletHandler(walletUseCase)
	serviceHandler := handlers.NewServiceHandler(catalogUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// The gateway posts callbacks here; no auth and no rate limit, or gateway
	// retries would be dropped.
	v1.POST("/payments/notification", paymentHandler.HandleNotification)

	authed := v1.Group("")
	authed.Use(middleware.Auth(tokens))
	authed.Use(middleware.RateLimit(60, time.Minute))

	addOrderRoutes(authed, orderHandler)
	addPaymentRoutes(authed, paymentHandler)
	addWalletRoutes(authed, walletHandler)
	addServiceRoutes(authed, serviceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
