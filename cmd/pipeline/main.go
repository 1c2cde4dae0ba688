package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Anxten/senti-quant/internal/pipeline/classifier"
	"github.com/Anxten/senti-quant/internal/pipeline/config"
	"github.com/Anxten/senti-quant/internal/pipeline/fetcher"
	"github.com/Anxten/senti-quant/internal/pipeline/repository"
	"github.com/Anxten/senti-quant/internal/pipeline/service"
	"github.com/Anxten/senti-quant/internal/pipeline/truth"
	"github.com/Anxten/senti-quant/pkg/logger"
	"github.com/Anxten/senti-quant/pkg/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// targetURLs is the fixed ingestion set for a run.
var targetURLs = []string{
	"https://www.cnbcindonesia.com/market/20230829141022-17-467053/bursa-asia-hijau-ihsg-malah-galau",
	"https://www.cnbcindonesia.com/investment/20230830103000-21-467321/waspada-penipuan-berkedok-investasi-saham",
	"https://www.cnbcindonesia.com/market/20240219080535-17-515431/ihsg-dibuka-hijau-lagi-saham-bumn-karya-berpesta",
}

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs the ingestion-and-scoring pipeline end-to-end",
	Run:   runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
	}()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting senti-quant pipeline", zap.String("name", cfg.App.Name))

	db, err := postgres.NewDB(postgres.FromDatabaseConfig(cfg.Database))
	if err != nil {
		appLogger.Fatal("Failed to initialize database", zap.Error(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	schemaRepo := repository.NewSchemaRepository(db.DB)
	sourceRepo := repository.NewNewsSourceRepository(db.DB, appLogger)
	articleRepo := repository.NewArticleRepository(db.DB)
	logRepo := repository.NewSentimentLogRepository(db.DB)

	pageFetcher := fetcher.New(appLogger, cfg.Fetcher.RequestTimeout, cfg.Fetcher.MaxConcurrent)

	// The classifier loads lazily: the factory runs only when the scoring
	// queue is non-empty.
	engineFactory := func(ctx context.Context) (*truth.Engine, error) {
		sentimentClassifier, err := classifier.NewGeminiClassifier(ctx, cfg, appLogger)
		if err != nil {
			return nil, err
		}
		return truth.NewEngine(sentimentClassifier), nil
	}

	pipelineSvc := service.NewPipelineService(
		schemaRepo,
		appLogger,
		pageFetcher,
		sourceRepo,
		articleRepo,
		logRepo,
		engineFactory,
		cfg.Scoring.BatchLimit,
	)

	summary, err := pipelineSvc.Run(ctx, targetURLs)
	if err != nil {
		appLogger.Fatal("Pipeline run failed", zap.Error(err))
	}

	appLogger.Info("Run summary",
		zap.Int("fetched", summary.Fetched),
		zap.Int("extracted", summary.Extracted),
		zap.Int("newly_saved", summary.Created),
		zap.Int("skipped", summary.Skipped),
		zap.Int("scored", summary.Scored),
		zap.Int("score_failed", summary.ScoreFailed),
	)
}

func main() {
	rootCmd := &cobra.Command{Use: "pipeline"}

	runCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-pipeline.yaml", "Path to the configuration file")

	rootCmd.AddCommand(runCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing pipeline CLI: %s\n", err)
		os.Exit(1)
	}
}
