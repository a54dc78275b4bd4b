package duckdb

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	duckdbsales "github.com/de-tools/sales-atlas/pkg/store/duckdb/sales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_LoadsImportedDataset(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sales.db")

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: path})
	require.NoError(t, err)
	store, err := duckdbsales.NewStore(db)
	require.NoError(t, err)
	require.NoError(t, store.Import(ctx, &domain.Dataset{
		Sellers:  []domain.Seller{{ID: "seller_1", FirstName: "Alexey", LastName: "Petrov"}},
		Products: []domain.Product{{SKU: "SKU_001", PurchasePrice: 10}},
		PurchaseRecords: []domain.PurchaseRecord{
			{ReceiptID: "r1", SellerID: "seller_1", Items: []domain.LineItem{{SKU: "SKU_001", SalePrice: 15, Quantity: 1}}},
		},
	}))
	require.NoError(t, db.Close())

	src, err := Factory(ctx, path)
	require.NoError(t, err)
	defer src.Close()

	data, err := src.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Sellers, 1)
	require.Len(t, data.PurchaseRecords, 1)
	assert.Equal(t, "SKU_001", data.PurchaseRecords[0].Items[0].SKU)
}

func TestFactory_RequiresPath(t *testing.T) {
	_, err := Factory(context.Background(), "")
	assert.Error(t, err)
}

func TestFactory_MissingFileIsNotCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anything.db")

	_, err := Factory(context.Background(), path)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}
