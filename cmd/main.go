package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pumpsui/pumpsui_service/internal/api/routes"
	"github.com/pumpsui/pumpsui_service/internal/infrastructure/config"
	"github.com/pumpsui/pumpsui_service/internal/infrastructure/di"
	"github.com/pumpsui/pumpsui_service/pkg/graceful"
	"github.com/pumpsui/pumpsui_service/pkg/logger"
	"github.com/pumpsui/pumpsui_service/pkg/tracing"

	"github.com/gin-gonic/gin"
)

// @title PumpSui Constants API
// @version 1.0
// @description Read-only access to the Sui object identifiers and endpoints used by the PumpSui front end

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel, cfg.Environment)
	defer func() { _ = log.Sync() }()

	// Initialize OpenTelemetry tracing
	tracingShutdown, err := tracing.InitTracer(context.Background(), tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		CollectorURL: cfg.Tracing.CollectorURL,
		Environment:  cfg.Environment,
		SampleRate:   cfg.Tracing.SampleRate,
		Insecure:     cfg.Tracing.Insecure,
	}, log.Zap())
	if err != nil {
		log.Fatal("Failed to initialize tracing", "error", err)
	}

	// Build the effective constant set; a malformed set never serves
	container, err := di.NewContainer(cfg, log)
	if err != nil {
		log.Fatal("Failed to build constant set", "error", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(cfg, container.Constants, log)

	server := &http.Server{
		Addr:           cfg.Server.Addr(),
		Handler:        router,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		log.Info("Starting server",
			"addr", server.Addr,
			"environment", cfg.Environment,
			"constants", container.Constants.Len(),
		)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	shutdownManager := graceful.NewShutdownManager(server, log)
	shutdownManager.Register(graceful.ShutdownFunc(tracingShutdown))
	shutdownManager.WaitForShutdown()
}
