package sales

import (
	"math"
	"slices"
	"sort"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const topProductsLimit = 3

// rank orders sellers by profit, highest first, and turns them into report rows.
// Sellers with equal profit keep their input order.
func rank(sellers []*accumulator, bonus BonusPolicy) []domain.ReportRow {
	ordered := slices.Clone(sellers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].stats.Profit > ordered[j].stats.Profit
	})

	total := len(ordered)
	rows := make([]domain.ReportRow, 0, total)
	for i, acc := range ordered {
		amount := bonus(i, total, acc.view())

		rows = append(rows, domain.ReportRow{
			SellerID:    acc.stats.SellerID,
			Name:        acc.stats.Name,
			Revenue:     roundMoney(acc.stats.Revenue),
			Profit:      roundMoney(acc.stats.Profit),
			SalesCount:  acc.stats.SalesCount,
			TopProducts: topProducts(acc, topProductsLimit),
			Bonus:       roundMoney(amount),
		})
	}
	return rows
}

// topProducts returns up to limit SKUs by sold quantity. Equal quantities keep
// the order in which the SKUs were first sold.
func topProducts(acc *accumulator, limit int) []domain.TopProduct {
	products := make([]domain.TopProduct, 0, len(acc.skuOrder))
	for _, sku := range acc.skuOrder {
		products = append(products, domain.TopProduct{
			SKU:      sku,
			Quantity: acc.stats.ProductsSold[sku],
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})

	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

// roundMoney rounds to cents, half away from zero, working on the shortest
// decimal form of v so that 2.675 becomes 2.68.
func roundMoney(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
