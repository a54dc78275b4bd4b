package sales

import (
	"context"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Analyze builds the seller performance report: one row per input seller,
// ordered by profit descending. It fails with *InvalidInputError or
// *MissingPolicyError before doing any work. The context only carries the
// logger.
func Analyze(ctx context.Context, data *domain.Dataset, policies Policies) ([]domain.ReportRow, error) {
	if err := Validate(data, policies); err != nil {
		return nil, err
	}

	g := newAggregation(data.Sellers)
	g.add(data.PurchaseRecords, indexProducts(data.Products), policies.Revenue)

	return finish(ctx, g, policies.Bonus), nil
}

func finish(ctx context.Context, g *aggregation, bonus BonusPolicy) []domain.ReportRow {
	logger := zerolog.Ctx(ctx)

	if g.skippedRecords > 0 || g.skippedItems > 0 {
		logger.Debug().
			Int("skipped_records", g.skippedRecords).
			Int("skipped_items", g.skippedItems).
			Msg("skipped purchases referencing unknown sellers or products")
	}

	rows := rank(g.sellers, bonus)

	logger.Debug().
		Int("sellers", len(rows)).
		Str("top_seller", rows[0].SellerID).
		Float64("top_profit", rows[0].Profit).
		Msg("sales analysis completed")

	return rows
}
