package sales

import (
	"context"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"golang.org/x/sync/errgroup"
)

// AnalyzeParallel produces the same rows as Analyze. Sellers are dealt out to
// workers and every purchase record goes to the worker owning its seller, in
// record order, so each seller's totals are summed exactly as Analyze sums
// them. workers <= 1 runs sequentially.
//
// Policies are called concurrently and must be safe for that.
func AnalyzeParallel(
	ctx context.Context,
	data *domain.Dataset,
	policies Policies,
	workers int,
) ([]domain.ReportRow, error) {
	if workers <= 1 {
		return Analyze(ctx, data, policies)
	}
	if err := Validate(data, policies); err != nil {
		return nil, err
	}

	g := newAggregation(data.Sellers)
	products := indexProducts(data.Products)
	buckets := g.partition(data.PurchaseRecords, workers)

	// workers share the seller index but write only to the accumulators
	// they own, so only the skip counters need separate copies
	shards := make([]*aggregation, len(buckets))
	var eg errgroup.Group
	for i, bucket := range buckets {
		eg.Go(func() error {
			shard := &aggregation{sellers: g.sellers, bySeller: g.bySeller}
			shard.add(bucket, products, policies.Revenue)
			shards[i] = shard
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, shard := range shards {
		g.skippedItems += shard.skippedItems
	}

	return finish(ctx, g, policies.Bonus), nil
}

// partition routes records to at most n buckets by the owner of their
// seller's accumulator. Records of unknown sellers are counted as skipped
// here and never reach a bucket.
func (g *aggregation) partition(records []domain.PurchaseRecord, n int) [][]domain.PurchaseRecord {
	if n > len(g.sellers) {
		n = len(g.sellers)
	}

	owner := make(map[*accumulator]int, len(g.sellers))
	for i, acc := range g.sellers {
		owner[acc] = i % n
	}

	buckets := make([][]domain.PurchaseRecord, n)
	for _, record := range records {
		acc, ok := g.bySeller[record.SellerID]
		if !ok {
			g.skippedRecords++
			continue
		}
		w := owner[acc]
		buckets[w] = append(buckets[w], record)
	}
	return buckets
}
