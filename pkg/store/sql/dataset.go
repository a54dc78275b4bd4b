package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

const (
	sellersQuery = `
		SELECT id, first_name, last_name
		FROM sellers
		ORDER BY id`

	productsQuery = `
		SELECT sku, name, purchase_price
		FROM products
		ORDER BY sku`

	purchasesQuery = `
		SELECT
			r.receipt_id,
			r.date,
			r.seller_id,
			r.customer_id,
			i.sku,
			i.sale_price,
			i.quantity,
			i.discount
		FROM purchase_records AS r
		LEFT JOIN purchase_items AS i
			ON i.receipt_id = r.receipt_id
		ORDER BY r.date, r.receipt_id, i.item_index`
)

// DatasetStore reads the three report collections from any database/sql
// backend that exposes the sellers, products, purchase_records and
// purchase_items tables.
type DatasetStore interface {
	ListSellers(ctx context.Context) ([]store.SellerRow, error)
	ListProducts(ctx context.Context) ([]store.ProductRow, error)
	ListPurchases(ctx context.Context) ([]store.PurchaseItemRow, error)
}

type datasetStore struct {
	db *sql.DB
}

func NewDatasetStore(db *sql.DB) DatasetStore {
	return &datasetStore{db: db}
}

func (s *datasetStore) ListSellers(ctx context.Context) ([]store.SellerRow, error) {
	rows, err := s.db.QueryContext(ctx, sellersQuery)
	if err != nil {
		return nil, fmt.Errorf("sellers query failed: %w", err)
	}
	defer closeRows(ctx, rows)

	sellers := make([]store.SellerRow, 0)
	for rows.Next() {
		var (
			id                  string
			firstName, lastName sql.NullString
		)
		if err := rows.Scan(&id, &firstName, &lastName); err != nil {
			return nil, err
		}
		sellers = append(sellers, store.SellerRow{
			ID:        id,
			FirstName: firstName.String,
			LastName:  lastName.String,
		})
	}

	return sellers, rows.Err()
}

func (s *datasetStore) ListProducts(ctx context.Context) ([]store.ProductRow, error) {
	rows, err := s.db.QueryContext(ctx, productsQuery)
	if err != nil {
		return nil, fmt.Errorf("products query failed: %w", err)
	}
	defer closeRows(ctx, rows)

	products := make([]store.ProductRow, 0)
	for rows.Next() {
		var (
			sku   string
			name  sql.NullString
			price float64
		)
		if err := rows.Scan(&sku, &name, &price); err != nil {
			return nil, err
		}
		products = append(products, store.ProductRow{
			SKU:           sku,
			Name:          name.String,
			PurchasePrice: price,
		})
	}

	return products, rows.Err()
}

func (s *datasetStore) ListPurchases(ctx context.Context) ([]store.PurchaseItemRow, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := s.db.QueryContext(ctx, purchasesQuery)
	if err != nil {
		return nil, fmt.Errorf("purchases query failed: %w", err)
	}
	defer closeRows(ctx, rows)

	purchases := make([]store.PurchaseItemRow, 0)
	for rows.Next() {
		var (
			row              store.PurchaseItemRow
			date, customerID sql.NullString
		)
		err := rows.Scan(
			&row.ReceiptID,
			&date,
			&row.SellerID,
			&customerID,
			&row.SKU,
			&row.SalePrice,
			&row.Quantity,
			&row.Discount,
		)
		if err != nil {
			return nil, err
		}
		row.Date = date.String
		row.CustomerID = customerID.String
		purchases = append(purchases, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.Debug().Int("rows", len(purchases)).Msg("retrieved purchase rows")

	return purchases, nil
}

func closeRows(ctx context.Context, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close query rows")
	}
}
