package routes

import (
	"github.com/pumpsui/pumpsui_service/docs"
	"github.com/pumpsui/pumpsui_service/internal/api/handlers"
	"github.com/pumpsui/pumpsui_service/internal/api/middleware"
	"github.com/pumpsui/pumpsui_service/internal/infrastructure/config"
	"github.com/pumpsui/pumpsui_service/pkg/constants"
	"github.com/pumpsui/pumpsui_service/pkg/logger"
	"github.com/pumpsui/pumpsui_service/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all application routes
func SetupRoutes(cfg *config.Config, set *constants.Set, log *logger.Logger) *gin.Engine {
	router := gin.New()

	// Global middleware - order matters
	router.Use(middleware.RequestID())
	router.Use(tracing.HTTPMiddleware())
	router.Use(middleware.Metrics())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.RateLimit(cfg.Server.RateLimitPerMin))

	healthHandler := handlers.NewHealthHandler(set, cfg.Environment)
	lookups, err := tracing.NewLookupMetrics()
	if err != nil {
		log.Warn("Constant lookup instruments unavailable", "error", err)
	}
	constantsHandlers := handlers.NewConstantsHandlers(set, lookups, log.Zap())

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation (development only)
	if cfg.Environment != "production" {
		docs.SwaggerInfo.Host = cfg.Server.Addr()
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/constants", constantsHandlers.ListConstants)
		v1.GET("/constants.env", constantsHandlers.ExportEnv)
		v1.GET("/constants/groups/:group", constantsHandlers.GetGroup)
		v1.GET("/constants/:key", constantsHandlers.GetConstant)
	}

	return router
}
