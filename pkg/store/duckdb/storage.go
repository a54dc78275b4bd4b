package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/marcboeker/go-duckdb/v2"
)

const SellersTableSchema = `
	CREATE TABLE IF NOT EXISTS sellers (
		id VARCHAR NOT NULL PRIMARY KEY,
		first_name VARCHAR,
		last_name VARCHAR
	);
`

const ProductsTableSchema = `
	CREATE TABLE IF NOT EXISTS products (
		sku VARCHAR NOT NULL PRIMARY KEY,
		name VARCHAR,
		purchase_price DOUBLE NOT NULL
	);
`

const PurchaseRecordsTableSchema = `
	CREATE TABLE IF NOT EXISTS purchase_records (
		receipt_id VARCHAR NOT NULL PRIMARY KEY,
		date VARCHAR,
		seller_id VARCHAR NOT NULL,
		customer_id VARCHAR
	);
`

const PurchaseItemsTableSchema = `
	CREATE TABLE IF NOT EXISTS purchase_items (
		receipt_id VARCHAR NOT NULL,
		item_index INTEGER NOT NULL,
		sku VARCHAR NOT NULL,
		sale_price DOUBLE NOT NULL,
		quantity INTEGER NOT NULL,
		discount DOUBLE NOT NULL DEFAULT 0,
		PRIMARY KEY (receipt_id, item_index)
	);
`

var bootQueries = []string{
	SellersTableSchema,
	ProductsTableSchema,
	PurchaseRecordsTableSchema,
	PurchaseItemsTableSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (or creates) a DuckDB file with the sales tables in place.
// Use ":memory:" for a throwaway database.
func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}

// OpenReadOnly opens an existing DuckDB file without creating it or touching
// its schema. A missing file is reported as fs.ErrNotExist.
func OpenReadOnly(dbPath string) (*sql.DB, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("duckdb file %s: %w", dbPath, fs.ErrNotExist)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("duckdb path %s is a directory", dbPath)
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?access_mode=READ_ONLY", dbPath), nil)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(c), nil
}
