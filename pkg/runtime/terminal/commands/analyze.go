package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
	"github.com/de-tools/sales-atlas/pkg/services/source"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	configPath string
	sourceName string
	format     string
	title      string
	currency   string
	workers    int
	timeout    time.Duration
	registry   source.Registry
	reporter   *export.Reporter
}

func NewAnalyzeCmd(registry source.Registry, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build the seller performance report from a data source",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.sourceName, "source", "", "Data source to read (see the sources command)")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to the source profile, or the dataset file for the file source")
	cmd.Flags().StringVar(&ac.format, "format", string(export.FormatTable), "Output format: table or json")
	cmd.Flags().StringVar(&ac.title, "title", report.DefaultTitle, "Report title")
	cmd.Flags().StringVar(&ac.currency, "currency", "", "Currency label shown next to totals")
	cmd.Flags().IntVar(&ac.workers, "workers", 1, "Number of parallel aggregation shards")
	cmd.Flags().DurationVar(&ac.timeout, "timeout", 60*time.Second, "Time limit for loading the dataset")

	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(ac.format)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), ac.timeout)
	defer cancel()

	svc := report.NewService(ac.registry, report.Options{
		Policies: sales.DefaultPolicies(),
		Workers:  ac.workers,
		Currency: ac.currency,
	})

	rep, err := svc.GenerateFromSource(ctx, ac.title, ac.sourceName, ac.configPath)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	return ac.reporter.Handle(rep, format)
}
