package routes

import (
	"log"
	"time"

	_ "pharma_express/docs" // This will be auto-generated
	"pharma_express/internal/adapter/http/handlers"
	"pharma_express/internal/adapter/http/middleware"
	repository "pharma_express/internal/adapter/persistence/repository"
	"pharma_express/internal/infrastructure/config"
	"pharma_express/internal/infrastructure/database"
	"pharma_express/internal/infrastructure/medapi"
	"pharma_express/internal/observability/metrics"
	"pharma_express/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	metrics.Init()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()
	sessionRepo := repository.NewSessionDynamoRepository(ddb, cfg.SessionsTable)

	client := medapi.NewClient(cfg.MedicalAPI.BaseURL, time.Duration(cfg.MedicalAPI.TimeoutSeconds)*time.Second)
	orderGateway := medapi.NewOrderGateway(client)
	catalogGateway := medapi.NewCatalogGateway(client)
	authGateway := medapi.NewAuthGateway(client)

	secret := []byte(cfg.JWT.Secret)
	tokenTTL := time.Duration(cfg.JWT.TTLMinutes) * time.Minute

	authUseCase := usecase.NewAuthUseCase(authGateway, sessionRepo, secret, tokenTTL)
	selectionUseCase := usecase.NewSelectionUseCase()
	lifecycleUseCase := usecase.NewOrderLifecycleUseCase(orderGateway)
	catalogUseCase := usecase.NewCatalogUseCase(catalogGateway)
	assignmentUseCase := usecase.NewAssignmentUseCase(catalogGateway, lifecycleUseCase, selectionUseCase)

	authHandler := handlers.NewAuthHandler(authUseCase, selectionUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentUseCase, selectionUseCase)
	orderHandler := handlers.NewOrderHandler(lifecycleUseCase, selectionUseCase)
	selectionHandler := handlers.NewSelectionHandler(selectionUseCase)

	requireSession := middleware.RequireSession(authUseCase, secret)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, requireSession, authHandler)
	addBenefitRoutes(v1, requireSession, catalogHandler, assignmentHandler, orderHandler, selectionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
