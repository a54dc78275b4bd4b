package databricks

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/databricks/databricks-sql-go"
	"github.com/de-tools/sales-atlas/pkg/services/source"
)

// Factory connects to a Databricks SQL warehouse described by the profile at
// configPath.
func Factory(ctx context.Context, configPath string) (source.Source, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.resolveProfile(ctx); err != nil {
		return nil, err
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("databricks", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Databricks: %w", err)
	}

	return source.NewSQLSource("databricks", db), nil
}
