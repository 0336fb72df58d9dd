// Package report formats computed analysis results for the terminal
// and for sheet export. It never computes anything itself: every
// function takes a finished table or verdict from the core and returns
// text.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"bankfile/internal/core"
)

const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// RenderTransactions formats records as an aligned table.
func RenderTransactions(records []core.Transaction) string {
	if len(records) == 0 {
		return "No matching transactions.\n"
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tAMOUNT\tTYPE\tCATEGORY\tACCOUNT")
	for _, t := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			core.Day(t.Date).Format(dateLayout),
			t.Description,
			t.Amount.StringFixed(2),
			t.Type,
			t.Category,
			t.Account,
		)
	}
	w.Flush()
	return b.String()
}

// RenderSuspicious narrates a suspicious-charge scan. An empty flagged
// set is the good outcome and is reported as such.
func RenderSuspicious(flagged []core.Transaction) string {
	if len(flagged) == 0 {
		return "No suspicious charges found.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Flagged %d suspicious charge(s):\n\n", len(flagged))
	b.WriteString(RenderTransactions(flagged))
	return b.String()
}

// RenderCashflow formats an income-vs-spending summary with the advice
// sentence matching its verdict.
func RenderCashflow(s core.CashflowSummary) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Income\t%s\n", s.Income.StringFixed(2))
	fmt.Fprintf(w, "Expense\t%s\n", s.Expense.StringFixed(2))
	fmt.Fprintf(w, "Net\t%s\n", s.Net.StringFixed(2))
	w.Flush()
	b.WriteString("\n")

	switch s.Verdict {
	case core.VerdictNegative:
		b.WriteString("You spent more than you earned over this period. Consider trimming your spending.\n")
	case core.VerdictPositive:
		b.WriteString("You earned more than you spent over this period. The surplus could be invested.\n")
	default:
		b.WriteString("You broke even over this period.\n")
	}
	return b.String()
}

// RenderFrequency formats a category frequency table.
func RenderFrequency(counts []core.CategoryCount) string {
	if len(counts) == 0 {
		return "No matching transactions.\n"
	}
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tCOUNT")
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\n", c.Category, c.Count)
	}
	w.Flush()
	return b.String()
}

// RenderTopCategories formats a category spending ranking.
func RenderTopCategories(totals []core.CategoryTotal) string {
	if len(totals) == 0 {
		return "No matching transactions.\n"
	}
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tTOTAL")
	for _, c := range totals {
		fmt.Fprintf(w, "%s\t%s\n", c.Category, c.Total.StringFixed(2))
	}
	w.Flush()
	return b.String()
}

// RenderWeekdays formats day-of-week statistics, one row per weekday.
func RenderWeekdays(stats []core.WeekdayStats) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tAVG TXNS\tMEAN\tMEDIAN\tMIN\tMAX")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Day,
			s.AvgCount.StringFixed(2),
			s.MeanTotal.StringFixed(2),
			s.MedianTotal.StringFixed(2),
			s.MinTotal.StringFixed(2),
			s.MaxTotal.StringFixed(2),
		)
	}
	w.Flush()
	return b.String()
}

// RenderPeriods formats period totals with the change against the
// prior period as a percentage; "-" marks an undefined change.
func RenderPeriods(periods []core.PeriodTotal) string {
	if len(periods) == 0 {
		return "No matching transactions.\n"
	}
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PERIOD\tTOTAL\tCHANGE")
	for _, p := range periods {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Period, p.Total.StringFixed(2), formatChange(p))
	}
	w.Flush()
	return b.String()
}

func formatChange(p core.PeriodTotal) string {
	if p.Change == nil {
		return "-"
	}
	return p.Change.Mul(hundred).StringFixed(1) + "%"
}

// FormatDay renders a date the way every report does.
func FormatDay(t time.Time) string {
	return core.Day(t).Format(dateLayout)
}
