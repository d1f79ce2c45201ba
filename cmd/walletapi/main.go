package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Aidin1998/walletapi/api"
	"github.com/Aidin1998/walletapi/internal/config"
	"github.com/Aidin1998/walletapi/internal/telemetry"
	"github.com/Aidin1998/walletapi/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	gin.SetMode(cfg.GinMode)

	shutdownTelemetry, err := telemetry.Setup(telemetry.Config{Enabled: cfg.TracingEnabled})
	if err != nil {
		zapLogger.Fatal("Failed to set up telemetry", zap.Error(err))
	}

	if cfg.DatabaseConfigured() {
		zapLogger.Info("DATABASE_URL is set but no store is attached; serving fabricated data")
	} else {
		zapLogger.Info("DATABASE_URL not set; serving fabricated data")
	}

	server, err := api.NewServer(zapLogger, api.Options{
		Version:        cfg.AppVersion,
		AllowedOrigins: cfg.AllowedOrigins,
		MetricsEnabled: cfg.MetricsEnabled,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create API server", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Starting wallet API server",
			zap.String("address", srv.Addr),
			zap.String("version", cfg.AppVersion))
		zapLogger.Info("API documentation available",
			zap.String("swagger_ui", api.SwaggerUIPath),
			zap.String("openapi", api.OpenAPIJSONPath))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := shutdownTelemetry(ctx); err != nil {
		zapLogger.Error("Failed to flush telemetry", zap.Error(err))
	}

	zapLogger.Info("Server shutdown complete")
}
