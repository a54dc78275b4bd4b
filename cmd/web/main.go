package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/sales-atlas/pkg/server"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/de-tools/sales-atlas/pkg/services/source"
	"github.com/de-tools/sales-atlas/pkg/services/source/databricks"
	"github.com/de-tools/sales-atlas/pkg/services/source/duckdb"
	"github.com/de-tools/sales-atlas/pkg/services/source/file"
	"github.com/de-tools/sales-atlas/pkg/services/source/s3"
	"github.com/de-tools/sales-atlas/pkg/services/source/snowflake"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	sourcesDir string
	currency   string
	workers    int
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Sales Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&sourcesDir, "sources", "s", "",
		"Directory with <source>.yaml profiles (default is $SOURCES_CONFIG_DIR or ./sources)")
	rootCmd.Flags().StringVar(&currency, "currency", "", "Currency label attached to reports")
	rootCmd.Flags().IntVar(&workers, "workers", 4, "Number of parallel aggregation shards")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if sourcesDir == "" {
		sourcesDir = os.Getenv("SOURCES_CONFIG_DIR")
	}
	if sourcesDir == "" {
		sourcesDir = "sources"
	}

	registry := source.NewRegistry(map[string]source.Factory{
		"file":       file.Factory,
		"s3":         s3.Factory,
		"databricks": databricks.Factory,
		"snowflake":  snowflake.Factory,
		"duckdb":     duckdb.Factory,
	})
	reports := report.NewService(registry, report.Options{
		Policies: sales.DefaultPolicies(),
		Workers:  workers,
		Currency: currency,
	})

	logger.Info().Msgf("Source profiles are read from `%s`.", sourcesDir)
	logger.Info().Strs("sources", registry.ListSources()).Msg("registered data sources")

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Reports:    reports,
			SourcesDir: sourcesDir,
			Logger:     logger,
		},
	})

	return api.Start()
}
