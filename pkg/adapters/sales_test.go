package adapters

import (
	"database/sql"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapApiDatasetToDomain_KeepsMissingCollectionsNil(t *testing.T) {
	out := MapApiDatasetToDomain(api.Dataset{
		Sellers: []api.Seller{},
		Products: []api.Product{
			{SKU: "SKU_001", Name: "Milk", PurchasePrice: 12.5},
		},
	})

	assert.NotNil(t, out.Sellers)
	assert.Empty(t, out.Sellers)
	assert.Nil(t, out.PurchaseRecords)
	assert.Equal(t, []domain.Product{{SKU: "SKU_001", Name: "Milk", PurchasePrice: 12.5}}, out.Products)
}

func TestMapStoreRowsToDomainDataset_GroupsItemsByReceipt(t *testing.T) {
	item := func(sku string, qty int64) (sql.NullString, sql.NullInt64) {
		return sql.NullString{String: sku, Valid: true}, sql.NullInt64{Int64: qty, Valid: true}
	}
	sku1, qty1 := item("P1", 2)
	sku2, qty2 := item("P2", 1)

	out := MapStoreRowsToDomainDataset(
		[]store.SellerRow{{ID: "seller_1", FirstName: "Ann", LastName: "Lee"}},
		[]store.ProductRow{{SKU: "P1", PurchasePrice: 3}},
		[]store.PurchaseItemRow{
			{ReceiptID: "r1", SellerID: "seller_1", SKU: sku1, Quantity: qty1,
				SalePrice: sql.NullFloat64{Float64: 5, Valid: true}},
			{ReceiptID: "r1", SellerID: "seller_1", SKU: sku2, Quantity: qty2,
				Discount: sql.NullFloat64{Float64: 10, Valid: true}},
			{ReceiptID: "r2", SellerID: "seller_1"},
			{ReceiptID: "r3", SellerID: "seller_9", SKU: sku1, Quantity: qty1},
		},
	)

	require.Len(t, out.PurchaseRecords, 3)
	assert.Equal(t, []domain.LineItem{
		{SKU: "P1", SalePrice: 5, Quantity: 2},
		{SKU: "P2", Quantity: 1, Discount: 10},
	}, out.PurchaseRecords[0].Items)
	assert.Empty(t, out.PurchaseRecords[1].Items)
	assert.Equal(t, "seller_9", out.PurchaseRecords[2].SellerID)
	assert.Len(t, out.PurchaseRecords[2].Items, 1)
}

func TestMapSalesReportDomainToApi(t *testing.T) {
	report := &domain.SalesReport{
		Title: "Q1",
		Rows: []domain.ReportRow{{
			SellerID: "A", Name: "Alice Adams", Revenue: 15, Profit: 5, SalesCount: 1, Bonus: 0.75,
			TopProducts: []domain.TopProduct{{SKU: "P1", Quantity: 1}},
		}},
		TotalRevenue: 15,
		TotalProfit:  5,
		TotalBonus:   0.75,
	}

	out := MapSalesReportDomainToApi(report)

	assert.Equal(t, "Q1", out.Title)
	require.Len(t, out.Sellers, 1)
	assert.Equal(t, []api.TopProduct{{SKU: "P1", Quantity: 1}}, out.Sellers[0].TopProducts)
	assert.Equal(t, 0.75, out.TotalBonus)
}
