package sales

import (
	"maps"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// accumulator holds one seller's running totals. skuOrder remembers the order
// in which SKUs were first sold and is used to break quantity ties.
type accumulator struct {
	stats    domain.SellerStats
	skuOrder []string
}

func newAccumulator(seller domain.Seller) *accumulator {
	return &accumulator{
		stats: domain.SellerStats{
			SellerID:     seller.ID,
			Name:         seller.FullName(),
			ProductsSold: make(map[string]int),
		},
	}
}

func (a *accumulator) addItem(sku string, quantity int, revenue, cost float64) {
	a.stats.Revenue += revenue
	a.stats.Profit += revenue - cost

	if _, ok := a.stats.ProductsSold[sku]; !ok {
		a.skuOrder = append(a.skuOrder, sku)
	}
	a.stats.ProductsSold[sku] += quantity
}

// view is the read-only copy handed to policies.
func (a *accumulator) view() domain.SellerStats {
	stats := a.stats
	stats.ProductsSold = maps.Clone(a.stats.ProductsSold)
	return stats
}

type aggregation struct {
	sellers  []*accumulator // input order
	bySeller map[string]*accumulator

	skippedRecords int
	skippedItems   int
}

func newAggregation(sellers []domain.Seller) *aggregation {
	g := &aggregation{
		sellers:  make([]*accumulator, 0, len(sellers)),
		bySeller: make(map[string]*accumulator, len(sellers)),
	}
	for _, s := range sellers {
		acc := newAccumulator(s)
		g.sellers = append(g.sellers, acc)
		// a repeated ID points at its last occurrence
		g.bySeller[s.ID] = acc
	}
	return g
}

func indexProducts(products []domain.Product) map[string]domain.Product {
	index := make(map[string]domain.Product, len(products))
	for _, p := range products {
		index[p.SKU] = p
	}
	return index
}

// add accumulates records. Records of unknown sellers and items of unknown
// products are skipped, not rejected.
func (g *aggregation) add(
	records []domain.PurchaseRecord,
	products map[string]domain.Product,
	revenue RevenuePolicy,
) {
	for _, record := range records {
		acc, ok := g.bySeller[record.SellerID]
		if !ok {
			g.skippedRecords++
			continue
		}

		acc.stats.SalesCount++

		for _, item := range record.Items {
			product, ok := products[item.SKU]
			if !ok {
				g.skippedItems++
				continue
			}

			itemRevenue := revenue(item, product)
			cost := product.PurchasePrice * float64(item.Quantity)
			acc.addItem(item.SKU, item.Quantity, itemRevenue, cost)
		}
	}
}
