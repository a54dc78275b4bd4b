package duckdb

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/services/source"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
)

// Factory opens the existing DuckDB file at configPath read-only. Files are
// created by the import command, never by reading.
func Factory(_ context.Context, configPath string) (source.Source, error) {
	if configPath == "" {
		return nil, fmt.Errorf("duckdb path is required")
	}

	db, err := duckdb.OpenReadOnly(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}

	return source.NewSQLSource("duckdb", db), nil
}
