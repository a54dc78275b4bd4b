package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/services/source"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	duckdbsales "github.com/de-tools/sales-atlas/pkg/store/duckdb/sales"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ImportCmd copies a dataset from any source into a local DuckDB file, which
// the `duckdb` source can then report on offline.
type ImportCmd struct {
	configPath string
	sourceName string
	dbPath     string
	timeout    time.Duration
	registry   source.Registry
}

func NewImportCmd(registry source.Registry) *cobra.Command {
	ic := &ImportCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a dataset into a local DuckDB file",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.sourceName, "source", "", "Data source to read")
	cmd.Flags().StringVar(&ic.configPath, "config", "", "Path to the source profile, or the dataset file for the file source")
	cmd.Flags().StringVar(&ic.dbPath, "db", "sales-atlas.db", "DuckDB file to import into")
	cmd.Flags().DurationVar(&ic.timeout, "timeout", 60*time.Second, "Time limit for the import")

	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), ic.timeout)
	defer cancel()
	logger := zerolog.Ctx(ctx)

	src, err := ic.registry.Create(ctx, ic.sourceName, ic.configPath)
	if err != nil {
		return fmt.Errorf("failed to create source %s: %w", ic.sourceName, err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close source")
		}
	}()

	data, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ic.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open DuckDB: %w", err)
	}
	defer db.Close()

	store, err := duckdbsales.NewStore(db)
	if err != nil {
		return err
	}
	if err := store.Import(ctx, data); err != nil {
		return fmt.Errorf("failed to import dataset: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sellers, %d products, %d purchase records into %s\n",
		len(data.Sellers), len(data.Products), len(data.PurchaseRecords), ic.dbPath)
	return nil
}
