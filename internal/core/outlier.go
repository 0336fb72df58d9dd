package core

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

var three = decimal.NewFromInt(3)

// Fences holds the quartiles and the IQR outer fences of a set of
// amounts. Invariant: Lower <= Q1 <= Q3 <= Upper.
type Fences struct {
	Q1    decimal.Decimal
	Q3    decimal.Decimal
	Lower decimal.Decimal
	Upper decimal.Decimal
}

// OuterFences computes the 25th and 75th percentiles of the amounts
// with linear interpolation between order statistics and derives the
// outer fences Q1 - 3*IQR and Q3 + 3*IQR.
func OuterFences(records []Transaction) (Fences, error) {
	if len(records) == 0 {
		return Fences{}, ErrEmptyInput
	}

	amounts := make([]decimal.Decimal, len(records))
	for i, t := range records {
		amounts[i] = t.Amount
	}
	sort.Slice(amounts, func(i, j int) bool {
		return amounts[i].LessThan(amounts[j])
	})

	q1 := quantile(amounts, 0.25)
	q3 := quantile(amounts, 0.75)
	span := q3.Sub(q1).Mul(three)

	return Fences{
		Q1:    q1,
		Q3:    q3,
		Lower: q1.Sub(span),
		Upper: q3.Add(span),
	}, nil
}

// quantile interpolates the p-quantile of sorted values at the
// fractional rank p*(n-1).
func quantile(sorted []decimal.Decimal, p float64) decimal.Decimal {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := decimal.NewFromFloat(rank - float64(lo))
	return sorted[lo].Add(sorted[hi].Sub(sorted[lo]).Mul(frac))
}

// SuspiciousCharges flags records falling outside the outer fences of
// the input set, under strict inequality. The lower fence applies to
// every record; the upper fence only to debits — the asymmetry is the
// documented flagging policy, not an accident. Among the flagged
// records, a description that appears more than once is treated as a
// recognized merchant and its occurrences are removed, so only charges
// with a unique description survive. The result is sorted by date then
// amount; an empty input or an all-clear scan both return an empty
// result, never an error.
func SuspiciousCharges(records []Transaction) ([]Transaction, error) {
	if len(records) == 0 {
		return nil, nil
	}

	fences, err := OuterFences(records)
	if err != nil {
		return nil, err
	}

	var flagged []Transaction
	for _, t := range records {
		belowLower := t.Amount.LessThan(fences.Lower)
		aboveUpper := t.Amount.GreaterThan(fences.Upper) && t.Type == Debit
		if belowLower || aboveUpper {
			flagged = append(flagged, t)
		}
	}

	seen := make(map[string]int, len(flagged))
	for _, t := range flagged {
		seen[t.Description]++
	}
	var out []Transaction
	for _, t := range flagged {
		if seen[t.Description] == 1 {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := Day(out[i].Date), Day(out[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return out[i].Amount.LessThan(out[j].Amount)
	})
	return out, nil
}
