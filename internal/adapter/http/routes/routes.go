package routes

import (
	"context"
	"log"
	"os"
	"strings"

	_ "moturial_payments/docs"
	"moturial_payments/internal/adapter/http/handlers"
	"moturial_payments/internal/adapter/persistence/repository"
	"moturial_payments/internal/config"
	"moturial_payments/internal/domain/validation"
	"moturial_payments/internal/infrastructure/cache"
	"moturial_payments/internal/infrastructure/database"
	"moturial_payments/internal/infrastructure/payments"
	"moturial_payments/internal/usecase"
	"moturial_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := config.GetenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()
	cfg := config.LoadPaymentConfigFromEnv()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}
	if isEnabled(os.Getenv("DYNAMODB_AUTO_CREATE_TABLE")) {
		table := config.GetenvDefault("PAYMENTS_TABLE", "payments")
		if err := database.EnsurePaymentsTable(ctx, ddb, table); err != nil {
			log.Fatalf("Failed to ensure payments table %s: %v", table, err)
		}
	}
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var resultCache interfaces.IPaymentResultCache
	if client, ok := cache.NewRedisClientFromEnv(); ok {
		resultCache = cache.NewRedisResultCache(client, cache.ResultTTLFromEnv())
	}

	paymentUseCase := usecase.NewPaymentUseCase(cfg, validation.NewValidator(cfg), paymentRepo, paymentGateway, resultCache)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
