package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	pipelineconfig "github.com/Anxten/senti-quant/internal/pipeline/config"
	"github.com/Anxten/senti-quant/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var configPath string

func newMigrator() *migrate.Migrate {
	cfg, err := pipelineconfig.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	m, err := migrate.New("file://migrations", postgres.URL(postgres.FromDatabaseConfig(cfg.Database)))
	if err != nil {
		log.Fatalf("Failed to create migrator: %v", err)
	}
	return m
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Printf("Migration source error on close: %v", srcErr)
	}
	if dbErr != nil {
		log.Printf("Migration database error on close: %v", dbErr)
	}
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		m := newMigrator()
		defer closeMigrator(m)

		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Schema is up to date.")
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the most recent schema migration",
	Run: func(cmd *cobra.Command, args []string) {
		m := newMigrator()
		defer closeMigrator(m)

		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Reverted the last migration.")
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "migrate"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-pipeline.yaml", "Path to the configuration file")

	rootCmd.AddCommand(upCmd, downCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing migrate CLI: %s\n", err)
		os.Exit(1)
	}
}
