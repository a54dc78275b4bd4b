package domain

import "time"

// SellerStats is the running total kept for one seller while purchase records
// are aggregated. Policies receive it by value.
type SellerStats struct {
	SellerID     string
	Name         string
	Revenue      float64
	Profit       float64
	SalesCount   int
	ProductsSold map[string]int // sku -> quantity
}

type TopProduct struct {
	SKU      string
	Quantity int
}

// ReportRow is the final per-seller line of the report. Money fields are
// rounded to cents.
type ReportRow struct {
	SellerID    string
	Name        string
	Revenue     float64
	Profit      float64
	SalesCount  int
	TopProducts []TopProduct
	Bonus       float64
}

// SalesReport wraps the ranked rows with the totals renderers print.
type SalesReport struct {
	Title        string
	GeneratedAt  time.Time
	Currency     string
	Rows         []ReportRow
	TotalRevenue float64
	TotalProfit  float64
	TotalBonus   float64
}
