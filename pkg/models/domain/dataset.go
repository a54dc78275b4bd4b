package domain

// Seller is a salesperson the report is built for.
type Seller struct {
	ID        string
	FirstName string
	LastName  string
}

// FullName is "<first> <last>", the name shown in reports.
func (s Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}

type Product struct {
	SKU           string
	Name          string
	PurchasePrice float64
}

// LineItem is one product entry of a receipt. Discount is a percentage.
type LineItem struct {
	SKU       string
	SalePrice float64
	Quantity  int
	Discount  float64
}

type PurchaseRecord struct {
	ReceiptID  string
	Date       string
	SellerID   string
	CustomerID string
	Items      []LineItem
}

// Dataset is the in-memory input of a report run. A nil collection means the
// collection was never supplied, which is not the same as an empty one.
type Dataset struct {
	Sellers         []Seller
	Products        []Product
	PurchaseRecords []PurchaseRecord
}
