package main

import (
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal"
	"github.com/de-tools/sales-atlas/pkg/services/source"
	"github.com/de-tools/sales-atlas/pkg/services/source/databricks"
	"github.com/de-tools/sales-atlas/pkg/services/source/duckdb"
	"github.com/de-tools/sales-atlas/pkg/services/source/file"
	"github.com/de-tools/sales-atlas/pkg/services/source/s3"
	"github.com/de-tools/sales-atlas/pkg/services/source/snowflake"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: newRegistry(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRegistry() source.Registry {
	return source.NewRegistry(map[string]source.Factory{
		"file":       file.Factory,
		"s3":         s3.Factory,
		"databricks": databricks.Factory,
		"snowflake":  snowflake.Factory,
		"duckdb":     duckdb.Factory,
	})
}
