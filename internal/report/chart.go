package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"bankfile/internal/core"
)

const chartWidth = 50

// Chart renders period totals as a horizontal bar chart. Rows are
// ordered by total ascending so the heaviest spending months sit at
// the top when amounts are negative. Bars are scaled to the largest
// absolute total.
func Chart(periods []core.PeriodTotal) string {
	if len(periods) == 0 {
		return "No matching transactions.\n"
	}

	rows := make([]core.PeriodTotal, len(periods))
	copy(rows, periods)
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.LessThan(rows[j].Total)
		}
		return rows[i].Period < rows[j].Period
	})

	maxAbs := decimal.Zero
	for _, r := range rows {
		if abs := r.Total.Abs(); abs.GreaterThan(maxAbs) {
			maxAbs = abs
		}
	}

	width := 0
	for _, r := range rows {
		if l := len(r.Total.StringFixed(2)); l > width {
			width = l
		}
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s  %*s |%s\n", r.Period, width, r.Total.StringFixed(2), bar(r.Total, maxAbs))
	}
	return b.String()
}

func bar(total, maxAbs decimal.Decimal) string {
	if maxAbs.IsZero() {
		return ""
	}
	n := total.Abs().Mul(decimal.NewFromInt(chartWidth)).Div(maxAbs).IntPart()
	if n == 0 && !total.IsZero() {
		n = 1
	}
	return strings.Repeat("#", int(n))
}
