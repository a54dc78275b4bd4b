package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/services/source"
	"github.com/spf13/cobra"
)

func NewSourcesCmd(registry source.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the data sources a report can be built from",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := registry.ListSources()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No data sources registered")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Available sources:\n%s\n", strings.Join(names, "\n"))
			return nil
		},
	}
}
