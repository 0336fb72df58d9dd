package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		records []Transaction
		net     string
		verdict Verdict
	}{
		{
			name: "spent more than earned",
			records: []Transaction{
				tx("2020-04-01", "salary", "1000", Credit, "X"),
				tx("2020-04-02", "rent", "700", Debit, "X"),
				tx("2020-04-03", "groceries", "500", Debit, "X"),
			},
			net:     "-200",
			verdict: VerdictNegative,
		},
		{
			name: "break even",
			records: []Transaction{
				tx("2020-04-01", "salary", "500", Credit, "X"),
				tx("2020-04-02", "rent", "500", Debit, "X"),
			},
			net:     "0",
			verdict: VerdictZero,
		},
		{
			name: "saved money",
			records: []Transaction{
				tx("2020-04-01", "salary", "1500.25", Credit, "X"),
				tx("2020-04-02", "rent", "700", Debit, "X"),
			},
			net:     "800.25",
			verdict: VerdictPositive,
		},
		{
			name:    "empty view sums to zero",
			records: nil,
			net:     "0",
			verdict: VerdictZero,
		},
		{
			name: "credits only",
			records: []Transaction{
				tx("2020-04-01", "interest", "12.34", Credit, "X"),
			},
			net:     "12.34",
			verdict: VerdictPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.records)
			if want := decimal.RequireFromString(tt.net); !got.Net.Equal(want) {
				t.Errorf("Net = %v, want %v", got.Net, want)
			}
			if got.Verdict != tt.verdict {
				t.Errorf("Verdict = %s, want %s", got.Verdict, tt.verdict)
			}
			if !got.Income.Sub(got.Expense).Equal(got.Net) {
				t.Errorf("Net %v is not Income %v - Expense %v", got.Net, got.Income, got.Expense)
			}
		})
	}
}
