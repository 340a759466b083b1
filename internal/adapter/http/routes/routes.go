package routes

import (
	"os"
	"strconv"

	_ "farmagest/docs" // This will be auto-generated
	"farmagest/internal/adapter/http/handlers"
	"farmagest/internal/adapter/http/middleware"
	repository2 "farmagest/internal/adapter/persistence/repository"
	"farmagest/internal/infrastructure/config"
	"farmagest/internal/infrastructure/database"
	"farmagest/internal/infrastructure/render"
	"farmagest/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "farmagest").Logger()
	cfg := config.Get(logger)

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		logger.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes(cfg *config.Config, logger zerolog.Logger) {
	ddb := database.ConnectDynamoDB(logger)

	devolucaoRepo := repository2.NewDevolucaoDynamoRepository(ddb)
	orcamentoRepo := repository2.NewOrcamentoDynamoRepository(ddb)
	vencidoRepo := repository2.NewVencidoDynamoRepository(ddb)

	renderer, err := render.NewHTTPRendererGateway(cfg.Renderer.URL, cfg.Renderer.Timeout, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("renderer gateway not configured")
	}

	devolucaoUseCase := usecase.NewDevolucaoUseCase(devolucaoRepo)
	orcamentoUseCase := usecase.NewOrcamentoUseCase(orcamentoRepo)
	vencidoUseCase := usecase.NewVencidoUseCase(vencidoRepo)
	documentoUseCase := usecase.NewDocumentoUseCase(orcamentoRepo, vencidoRepo, renderer)

	devolucaoHandler := handlers.NewDevolucaoHandler(devolucaoUseCase)
	orcamentoHandler := handlers.NewOrcamentoHandler(orcamentoUseCase, documentoUseCase)
	vencidoHandler := handlers.NewVencidoHandler(vencidoUseCase, documentoUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	autenticado := v1.Group("")
	autenticado.Use(middleware.Autenticacao(cfg.Auth.JWTSecret, cfg.Auth.AuthorizedEmails))
	addPharmacyRoutes(autenticado, devolucaoHandler, orcamentoHandler, vencidoHandler)
}

func setMiddlewares(logger zerolog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
