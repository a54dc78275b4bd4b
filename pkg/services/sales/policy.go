package sales

import "github.com/de-tools/sales-atlas/pkg/models/domain"

// RevenuePolicy returns the revenue of a single line item.
type RevenuePolicy func(item domain.LineItem, product domain.Product) float64

// BonusPolicy returns the bonus of the seller placed at rank (0-based) out of
// total sellers.
type BonusPolicy func(rank, total int, seller domain.SellerStats) float64

type Policies struct {
	Revenue RevenuePolicy
	Bonus   BonusPolicy
}

func DefaultPolicies() Policies {
	return Policies{
		Revenue: SimpleRevenue,
		Bonus:   BonusByProfit,
	}
}

// SimpleRevenue is sale price times quantity minus the percentage discount.
// Discounts outside [0, 100] are used as given.
func SimpleRevenue(item domain.LineItem, _ domain.Product) float64 {
	discount := item.Discount / 100
	return item.SalePrice * float64(item.Quantity) * (1 - discount)
}

// BonusByProfit pays a share of profit by rank: 15% for the first place, 10%
// for the second and third, 5% for everyone else except the last place.
// The first-place rule is checked first, so a lone seller gets 15%.
func BonusByProfit(rank, total int, seller domain.SellerStats) float64 {
	switch {
	case rank == 0:
		return seller.Profit * 0.15
	case rank == 1 || rank == 2:
		return seller.Profit * 0.10
	case rank < total-1:
		return seller.Profit * 0.05
	default:
		return 0
	}
}
