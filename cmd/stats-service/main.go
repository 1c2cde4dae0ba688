package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anxten/senti-quant/internal/stats/config"
	statshttp "github.com/Anxten/senti-quant/internal/stats/delivery/http"
	"github.com/Anxten/senti-quant/internal/stats/repository"
	"github.com/Anxten/senti-quant/internal/stats/service"
	"github.com/Anxten/senti-quant/pkg/logger"
	"github.com/Anxten/senti-quant/pkg/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the read-only stats API",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Stats Service", zap.String("name", cfg.App.Name))

	db, err := postgres.NewDB(postgres.FromDatabaseConfig(cfg.Database))
	if err != nil {
		appLogger.Fatal("Failed to initialize database", zap.Error(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	statsRepo := repository.NewStatsRepository(db.DB)
	statsSvc := service.NewStatsService(statsRepo)
	statsHandler := statshttp.NewStatsHandler(statsSvc, appLogger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	statsHandler.RegisterRoutes(e.Group("/api/v1/stats"))

	address := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start stats API", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down stats service...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		appLogger.Error("Failed to shut down cleanly", zap.Error(err))
	}
	appLogger.Info("Stats service stopped.")
}

func main() {
	rootCmd := &cobra.Command{Use: "stats-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-stats.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing stats-service CLI: %s\n", err)
		os.Exit(1)
	}
}
