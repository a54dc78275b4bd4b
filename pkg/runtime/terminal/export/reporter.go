package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q, expected one of: table, json", s)
	}
}

type TableConfig struct {
	RankWidth     int
	NameWidth     int
	MoneyWidth    int
	CountWidth    int
	ProductsWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		RankWidth:     4,
		NameWidth:     28,
		MoneyWidth:    12,
		CountWidth:    6,
		ProductsWidth: 40,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.SalesReport, format Format) error {
	switch format {
	case FormatJSON:
		return c.writeJSON(report)
	case FormatTable, "":
		return c.writeTable(report)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func (c *Reporter) writeJSON(report *domain.SalesReport) error {
	enc := json.NewEncoder(c.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(adapters.MapSalesReportDomainToApi(report))
}

func (c *Reporter) writeTable(report *domain.SalesReport) error {
	cfg := c.config
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }

	funcMap := template.FuncMap{
		"formatRow": func(rank, name, revenue, profit, sales, bonus, products string) string {
			return fmt.Sprintf("| %-*s | %-*s | %*s | %*s | %*s | %*s | %-*s |",
				cfg.RankWidth, rank,
				cfg.NameWidth, truncate(name, cfg.NameWidth),
				cfg.MoneyWidth, revenue,
				cfg.MoneyWidth, profit,
				cfg.CountWidth, sales,
				cfg.MoneyWidth, bonus,
				cfg.ProductsWidth, truncate(products, cfg.ProductsWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+%s+%s+",
				strings.Repeat("-", cfg.RankWidth+2),
				strings.Repeat("-", cfg.NameWidth+2),
				strings.Repeat("-", cfg.MoneyWidth+2),
				strings.Repeat("-", cfg.MoneyWidth+2),
				strings.Repeat("-", cfg.CountWidth+2),
				strings.Repeat("-", cfg.MoneyWidth+2),
				strings.Repeat("-", cfg.ProductsWidth+2))
		},
		"money":    money,
		"rank":     func(i int) string { return fmt.Sprintf("%d", i+1) },
		"count":    func(n int) string { return fmt.Sprintf("%d", n) },
		"products": formatTopProducts,
	}

	tmpl := `
{{.Title}}
Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}
Total Revenue: {{if .Currency}}{{.Currency}} {{end}}{{money .TotalRevenue}}
Total Profit: {{if .Currency}}{{.Currency}} {{end}}{{money .TotalProfit}}
Total Bonus: {{if .Currency}}{{.Currency}} {{end}}{{money .TotalBonus}}

{{separator}}
{{formatRow "#" "Seller" "Revenue" "Profit" "Sales" "Bonus" "Top Products"}}
{{separator}}
{{range $i, $row := .Rows}}{{formatRow (rank $i) $row.Name (money $row.Revenue) (money $row.Profit) (count $row.SalesCount) (money $row.Bonus) (products $row.TopProducts)}}
{{end}}{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func formatTopProducts(products []domain.TopProduct) string {
	parts := make([]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, fmt.Sprintf("%s x%d", p.SKU, p.Quantity))
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
