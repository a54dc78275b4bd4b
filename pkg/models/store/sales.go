package store

import "database/sql"

type SellerRow struct {
	ID        string
	FirstName string
	LastName  string
}

type ProductRow struct {
	SKU           string
	Name          string
	PurchasePrice float64
}

// PurchaseItemRow is one row of purchase_records LEFT JOIN purchase_items.
// Item columns are NULL for a receipt without items.
type PurchaseItemRow struct {
	ReceiptID  string
	Date       string
	SellerID   string
	CustomerID string
	SKU        sql.NullString
	SalePrice  sql.NullFloat64
	Quantity   sql.NullInt64
	Discount   sql.NullFloat64
}
