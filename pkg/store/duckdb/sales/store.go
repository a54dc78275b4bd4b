package sales

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	"github.com/rs/zerolog"
)

// Store writes datasets into the local DuckDB sales tables. Reading goes
// through the generic SQL dataset store.
type Store interface {
	Import(ctx context.Context, data *domain.Dataset) error
}

type salesStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &salesStore{db: db}, nil
}

// Import inserts all collections of data. It joins the transaction carried by
// ctx, or runs in its own one.
func (s *salesStore) Import(ctx context.Context, data *domain.Dataset) error {
	if data == nil {
		return fmt.Errorf("dataset is nil")
	}

	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return s.insert(ctx, tx, data)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := s.insert(duckdb.WithTransaction(ctx, tx), tx, data); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zerolog.Ctx(ctx).Warn().Err(rbErr).Msg("failed to roll back import")
		}
		return err
	}
	return tx.Commit()
}

func (s *salesStore) insert(ctx context.Context, tx *sql.Tx, data *domain.Dataset) error {
	logger := zerolog.Ctx(ctx)

	sellers, err := tx.PrepareContext(ctx,
		`INSERT INTO sellers (id, first_name, last_name) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare sellers statement: %w", err)
	}
	defer sellers.Close()

	for _, seller := range data.Sellers {
		if _, err := sellers.ExecContext(ctx, seller.ID, seller.FirstName, seller.LastName); err != nil {
			return fmt.Errorf("insert seller %s: %w", seller.ID, err)
		}
	}

	products, err := tx.PrepareContext(ctx,
		`INSERT INTO products (sku, name, purchase_price) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare products statement: %w", err)
	}
	defer products.Close()

	for _, product := range data.Products {
		if _, err := products.ExecContext(ctx, product.SKU, product.Name, product.PurchasePrice); err != nil {
			return fmt.Errorf("insert product %s: %w", product.SKU, err)
		}
	}

	records, err := tx.PrepareContext(ctx,
		`INSERT INTO purchase_records (receipt_id, date, seller_id, customer_id) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare purchase records statement: %w", err)
	}
	defer records.Close()

	items, err := tx.PrepareContext(ctx, `
		INSERT INTO purchase_items (
			receipt_id, item_index, sku, sale_price, quantity, discount
		) VALUES (
			?, ?, ?, ?, ?, ?
		)`)
	if err != nil {
		return fmt.Errorf("prepare purchase items statement: %w", err)
	}
	defer items.Close()

	for n, record := range data.PurchaseRecords {
		receiptID := record.ReceiptID
		if receiptID == "" {
			receiptID = fmt.Sprintf("receipt_%06d", n+1)
		}

		_, err := records.ExecContext(ctx, receiptID, record.Date, record.SellerID, record.CustomerID)
		if err != nil {
			return fmt.Errorf("insert purchase record %s: %w", receiptID, err)
		}

		for i, item := range record.Items {
			_, err := items.ExecContext(ctx,
				receiptID,
				i,
				item.SKU,
				item.SalePrice,
				item.Quantity,
				item.Discount,
			)
			if err != nil {
				return fmt.Errorf("insert item %d of %s: %w", i, receiptID, err)
			}
		}
	}

	logger.Debug().
		Int("sellers", len(data.Sellers)).
		Int("products", len(data.Products)).
		Int("purchase_records", len(data.PurchaseRecords)).
		Msg("imported dataset")

	return nil
}
