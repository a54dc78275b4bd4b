package sales

import (
	"math"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Summarize wraps ranked rows into a report with cent-exact totals. Values a
// policy left non-finite are not counted.
func Summarize(title string, rows []domain.ReportRow) *domain.SalesReport {
	revenue, profit, bonus := decimal.Zero, decimal.Zero, decimal.Zero
	for _, row := range rows {
		revenue = revenue.Add(money(row.Revenue))
		profit = profit.Add(money(row.Profit))
		bonus = bonus.Add(money(row.Bonus))
	}

	return &domain.SalesReport{
		Title:        title,
		GeneratedAt:  time.Now().UTC(),
		Rows:         rows,
		TotalRevenue: revenue.Round(2).InexactFloat64(),
		TotalProfit:  profit.Round(2).InexactFloat64(),
		TotalBonus:   bonus.Round(2).InexactFloat64(),
	}
}

func money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
