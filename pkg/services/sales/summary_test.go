package sales

import (
	"math"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	rows := []domain.ReportRow{
		{SellerID: "a", Revenue: 0.1, Profit: 0.2, Bonus: 0.03},
		{SellerID: "b", Revenue: 0.2, Profit: -0.1, Bonus: 0},
		{SellerID: "c", Revenue: 1, Profit: 1, Bonus: math.NaN()},
	}

	report := Summarize("Sellers", rows)

	assert.Equal(t, "Sellers", report.Title)
	assert.Len(t, report.Rows, 3)
	assert.Equal(t, 1.3, report.TotalRevenue)
	assert.Equal(t, 1.1, report.TotalProfit)
	assert.Equal(t, 0.03, report.TotalBonus)
	assert.False(t, report.GeneratedAt.IsZero())
}
