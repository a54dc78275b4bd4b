package api

import "time"

type TopProduct struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type ReportRow struct {
	SellerID    string       `json:"seller_id"`
	Name        string       `json:"name"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	SalesCount  int          `json:"sales_count"`
	TopProducts []TopProduct `json:"top_products"`
	Bonus       float64      `json:"bonus"`
}

type SalesReport struct {
	Title        string      `json:"title"`
	GeneratedAt  time.Time   `json:"generated_at"`
	Currency     string      `json:"currency,omitempty"`
	TotalRevenue float64     `json:"total_revenue"`
	TotalProfit  float64     `json:"total_profit"`
	TotalBonus   float64     `json:"total_bonus"`
	Sellers      []ReportRow `json:"sellers"`
}

type Source struct {
	Name string `json:"name"`
}

type Error struct {
	Error string `json:"error"`
}
