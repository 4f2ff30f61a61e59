package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "webatelier/docs" // generated swagger docs
	"webatelier/internal/adapter/http/handlers"
	"webatelier/internal/adapter/persistence/mirror"
	repository2 "webatelier/internal/adapter/persistence/repository"
	"webatelier/internal/adapter/session"
	"webatelier/internal/infrastructure/cache"
	"webatelier/internal/infrastructure/database"
	"webatelier/internal/usecase"
	"webatelier/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	var orderMirror interfaces.IOrderMirror
	if db := database.ConnectPostgres(); db != nil {
		pg := mirror.NewPostgresMirror(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Printf("mirror schema setup failed (mirror writes may fail): %v", err)
		}
		orderMirror = pg
	}

	var identity interfaces.IIdentityProvider
	if rdb := cache.ConnectRedis(); rdb != nil {
		identity = session.NewRedisIdentityProvider(rdb)
	}

	wizardUseCase := usecase.NewWizardUseCase(orderRepo, orderMirror, userRepo, identity)
	adminUseCase := usecase.NewAdminUseCase(orderRepo, userRepo)

	wizardHandler := handlers.NewWizardHandler(wizardUseCase)
	catalogHandler := handlers.NewCatalogHandler()
	adminHandler := handlers.NewAdminHandler(adminUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addWizardRoutes(v1, wizardHandler)
	addAdminRoutes(v1, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
