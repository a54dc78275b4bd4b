package report

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/de-tools/sales-atlas/pkg/services/source"
	"github.com/rs/zerolog"
)

const DefaultTitle = "Seller Performance Report"

// Service produces sales reports from in-memory datasets or registered sources.
type Service interface {
	Generate(ctx context.Context, title string, data *domain.Dataset) (*domain.SalesReport, error)
	GenerateFromSource(ctx context.Context, title, sourceName, configPath string) (*domain.SalesReport, error)
	ListSources() []string
}

type Options struct {
	Policies sales.Policies
	// Workers > 1 aggregates purchase records in parallel shards
	Workers  int
	Currency string
}

type service struct {
	registry source.Registry
	opts     Options
}

func NewService(registry source.Registry, opts Options) Service {
	return &service{
		registry: registry,
		opts:     opts,
	}
}

func (s *service) Generate(ctx context.Context, title string, data *domain.Dataset) (*domain.SalesReport, error) {
	rows, err := sales.AnalyzeParallel(ctx, data, s.opts.Policies, s.opts.Workers)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = DefaultTitle
	}
	report := sales.Summarize(title, rows)
	report.Currency = s.opts.Currency

	zerolog.Ctx(ctx).Info().
		Int("sellers", len(report.Rows)).
		Float64("total_revenue", report.TotalRevenue).
		Float64("total_profit", report.TotalProfit).
		Msg("sales report generated")

	return report, nil
}

func (s *service) GenerateFromSource(
	ctx context.Context,
	title, sourceName, configPath string,
) (*domain.SalesReport, error) {
	logger := zerolog.Ctx(ctx)

	src, err := s.registry.Create(ctx, sourceName, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create source %s: %w", sourceName, err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn().Err(err).Str("source", sourceName).Msg("failed to close source")
		}
	}()

	data, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	return s.Generate(ctx, title, data)
}

func (s *service) ListSources() []string {
	return s.registry.ListSources()
}
