package api

// Dataset mirrors the JSON data files the report is computed from.
type Dataset struct {
	Sellers         []Seller         `json:"sellers"`
	Products        []Product        `json:"products"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}

type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Product struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
}

type LineItem struct {
	SKU       string  `json:"sku"`
	SalePrice float64 `json:"sale_price"`
	Quantity  int     `json:"quantity"`
	Discount  float64 `json:"discount"`
}

type PurchaseRecord struct {
	ReceiptID  string     `json:"receipt_id,omitempty"`
	Date       string     `json:"date,omitempty"`
	SellerID   string     `json:"seller_id"`
	CustomerID string     `json:"customer_id,omitempty"`
	Items      []LineItem `json:"items"`
}
