package snowflake

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/services/source"
	sf "github.com/snowflakedb/gosnowflake"
)

// Factory connects to the Snowflake database described by the profile at
// configPath. The sales tables are read from the configured database/schema.
func Factory(_ context.Context, configPath string) (source.Source, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dsn, err := sf.DSN(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create DSN: %w", err)
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	return source.NewSQLSource("snowflake", db), nil
}
