package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Week  Granularity = "week"
	Month Granularity = "month"
	Year  Granularity = "year"
)

type (
	// Granularity is the bucketing unit for period-over-period
	// comparison. Weeks start on Monday.
	Granularity string

	// WeekdayStats summarizes the daily totals of one weekday. The
	// averages are taken over the distinct calendar days of that weekday
	// carrying transactions; a weekday with none reports all-zero stats.
	WeekdayStats struct {
		Day         time.Weekday
		AvgCount    decimal.Decimal
		MeanTotal   decimal.Decimal
		MedianTotal decimal.Decimal
		MinTotal    decimal.Decimal
		MaxTotal    decimal.Decimal
	}

	// PeriodTotal is one bucket of a period comparison. Change is the
	// ratio (current - previous) / previous against the prior bucket;
	// it is nil for the earliest bucket and whenever the prior total is
	// zero.
	PeriodTotal struct {
		Period string
		Total  decimal.Decimal
		Change *decimal.Decimal
	}
)

// ParseGranularity maps a user-supplied string to a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case Week, Month, Year:
		return Granularity(s), nil
	default:
		return "", fmt.Errorf("%w: unknown granularity %q", ErrInvalidArgument, s)
	}
}

// weekdays fixes the reporting order: Monday through Sunday.
var weekdays = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ByDayOfWeek groups records by calendar day, then buckets the days by
// weekday and summarizes each bucket's daily totals. The result always
// has exactly seven rows in Monday..Sunday order, whatever the input.
func ByDayOfWeek(records []Transaction) []WeekdayStats {
	type dayAgg struct {
		count int64
		total decimal.Decimal
	}

	days := make(map[time.Time]*dayAgg)
	for _, t := range records {
		d := Day(t.Date)
		agg := days[d]
		if agg == nil {
			agg = &dayAgg{}
			days[d] = agg
		}
		agg.count++
		agg.total = agg.total.Add(t.Amount)
	}

	byWeekday := make(map[time.Weekday][]*dayAgg)
	for d, agg := range days {
		byWeekday[d.Weekday()] = append(byWeekday[d.Weekday()], agg)
	}

	out := make([]WeekdayStats, 0, len(weekdays))
	for _, wd := range weekdays {
		stats := WeekdayStats{Day: wd}
		aggs := byWeekday[wd]
		if len(aggs) > 0 {
			n := decimal.NewFromInt(int64(len(aggs)))
			totals := make([]decimal.Decimal, len(aggs))
			sum := decimal.Zero
			var txns int64
			for i, agg := range aggs {
				totals[i] = agg.total
				sum = sum.Add(agg.total)
				txns += agg.count
			}
			sort.Slice(totals, func(i, j int) bool {
				return totals[i].LessThan(totals[j])
			})

			stats.AvgCount = decimal.NewFromInt(txns).Div(n)
			stats.MeanTotal = sum.Div(n)
			stats.MedianTotal = median(totals)
			stats.MinTotal = totals[0]
			stats.MaxTotal = totals[len(totals)-1]
		}
		out = append(out, stats)
	}
	return out
}

func median(sorted []decimal.Decimal) decimal.Decimal {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return sorted[n/2-1].Add(sorted[n/2]).Div(decimal.NewFromInt(2))
}

// ByPeriod totals the amounts per week, month or year and adjoins the
// percent change against the prior bucket. Buckets are keyed so that
// lexicographic order is chronological order and come back sorted.
func ByPeriod(records []Transaction, g Granularity) ([]PeriodTotal, error) {
	var key func(time.Time) string
	switch g {
	case Week:
		key = func(d time.Time) string { return weekStart(d).Format("2006-01-02") }
	case Month:
		key = func(d time.Time) string { return d.Format("2006-01") }
	case Year:
		key = func(d time.Time) string { return d.Format("2006") }
	default:
		return nil, fmt.Errorf("%w: unknown granularity %q", ErrInvalidArgument, g)
	}

	totals := make(map[string]decimal.Decimal)
	for _, t := range records {
		k := key(Day(t.Date))
		totals[k] = totals[k].Add(t.Amount)
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]PeriodTotal, 0, len(keys))
	for i, k := range keys {
		pt := PeriodTotal{Period: k, Total: totals[k]}
		if i > 0 {
			prev := totals[keys[i-1]]
			if !prev.IsZero() {
				change := pt.Total.Sub(prev).Div(prev)
				pt.Change = &change
			}
		}
		out = append(out, pt)
	}
	return out, nil
}

// weekStart returns the Monday of d's ISO week.
func weekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
