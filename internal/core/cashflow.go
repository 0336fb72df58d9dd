package core

import "github.com/shopspring/decimal"

const (
	VerdictNegative Verdict = "negative" // spent more than earned
	VerdictZero     Verdict = "zero"     // broke even
	VerdictPositive Verdict = "positive" // earned more than spent
)

type (
	// Verdict classifies a cashflow summary. Any advice text hung off it
	// belongs to the presentation layer.
	Verdict string

	// CashflowSummary aggregates credits against debits over one
	// filtered view.
	CashflowSummary struct {
		Income  decimal.Decimal
		Expense decimal.Decimal
		Net     decimal.Decimal
		Verdict Verdict
	}
)

// Summarize sums credit amounts into Income, debit amounts into
// Expense, and classifies Net = Income - Expense. Either side of an
// empty set sums to zero, so the call is total: an empty view yields a
// zero summary with VerdictZero rather than an error.
func Summarize(records []Transaction) CashflowSummary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range records {
		switch t.Type {
		case Credit:
			income = income.Add(t.Amount)
		case Debit:
			expense = expense.Add(t.Amount)
		}
	}

	net := income.Sub(expense)
	verdict := VerdictZero
	switch net.Sign() {
	case -1:
		verdict = VerdictNegative
	case 1:
		verdict = VerdictPositive
	}

	return CashflowSummary{
		Income:  income,
		Expense: expense,
		Net:     net,
		Verdict: verdict,
	}
}
