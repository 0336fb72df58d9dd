package report

import (
	"strconv"

	"bankfile/internal/core"
)

// The table builders produce header+rows pairs in the shape the sheet
// writer expects, mirroring the terminal renderers column for column.

func FrequencyTable(counts []core.CategoryCount) ([]string, [][]string) {
	header := []string{"Category", "Count"}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Category, strconv.Itoa(c.Count)})
	}
	return header, rows
}

func TopCategoriesTable(totals []core.CategoryTotal) ([]string, [][]string) {
	header := []string{"Category", "Total"}
	rows := make([][]string, 0, len(totals))
	for _, c := range totals {
		rows = append(rows, []string{c.Category, c.Total.StringFixed(2)})
	}
	return header, rows
}

func WeekdayTable(stats []core.WeekdayStats) ([]string, [][]string) {
	header := []string{"Day", "Avg Txns", "Mean", "Median", "Min", "Max"}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Day.String(),
			s.AvgCount.StringFixed(2),
			s.MeanTotal.StringFixed(2),
			s.MedianTotal.StringFixed(2),
			s.MinTotal.StringFixed(2),
			s.MaxTotal.StringFixed(2),
		})
	}
	return header, rows
}

func PeriodTable(periods []core.PeriodTotal) ([]string, [][]string) {
	header := []string{"Period", "Total", "Change"}
	rows := make([][]string, 0, len(periods))
	for _, p := range periods {
		rows = append(rows, []string{p.Period, p.Total.StringFixed(2), formatChange(p)})
	}
	return header, rows
}
