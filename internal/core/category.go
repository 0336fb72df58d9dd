package core

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

type (
	// CategoryCount is one row of a category frequency table.
	CategoryCount struct {
		Category string
		Count    int
	}

	// CategoryTotal is one row of a category spending ranking.
	CategoryTotal struct {
		Category string
		Total    decimal.Decimal
	}
)

// Frequency counts records per category, most frequent first. Ties are
// broken by category name so the ordering is deterministic.
func Frequency(records []Transaction) []CategoryCount {
	counts := make(map[string]int)
	for _, t := range records {
		counts[t.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TopByAmount sums the amounts of every record per category and ranks
// the categories by total, largest first, ties broken by name. The
// result is truncated to the first n rows; n must be positive.
func TopByAmount(records []Transaction, n int) ([]CategoryTotal, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: top category count %d must be positive", ErrInvalidArgument, n)
	}

	totals := make(map[string]decimal.Decimal)
	for _, t := range records {
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for c, sum := range totals {
		out = append(out, CategoryTotal{Category: c, Total: sum})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})

	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}
