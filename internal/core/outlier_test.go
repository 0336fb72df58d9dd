package core

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestOuterFencesOrdering(t *testing.T) {
	sets := [][]Transaction{
		{
			tx("2020-04-01", "a", "10", Debit, "X"),
			tx("2020-04-02", "b", "10", Debit, "X"),
			tx("2020-04-03", "c", "10", Debit, "X"),
		},
		{
			tx("2020-04-01", "a", "-12.50", Debit, "X"),
			tx("2020-04-02", "b", "7", Credit, "X"),
			tx("2020-04-03", "c", "19.99", Debit, "X"),
			tx("2020-04-04", "d", "-3", Debit, "X"),
			tx("2020-04-05", "e", "250", Credit, "X"),
		},
		{
			tx("2020-04-01", "a", "-5000", Debit, "X"),
			tx("2020-04-02", "b", "-10", Debit, "X"),
		},
	}
	for i, records := range sets {
		f, err := OuterFences(records)
		if err != nil {
			t.Fatalf("set %d: unexpected error: %v", i, err)
		}
		if f.Lower.GreaterThan(f.Q1) || f.Q1.GreaterThan(f.Q3) || f.Q3.GreaterThan(f.Upper) {
			t.Errorf("set %d: fence ordering violated: %v <= %v <= %v <= %v",
				i, f.Lower, f.Q1, f.Q3, f.Upper)
		}
	}
}

func TestOuterFencesEmpty(t *testing.T) {
	if _, err := OuterFences(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestOuterFencesInterpolation(t *testing.T) {
	// Sorted amounts 10, 20, 30, 40: Q1 sits at rank 0.75 between 10 and
	// 20, Q3 at rank 2.25 between 30 and 40.
	records := []Transaction{
		tx("2020-04-01", "a", "40", Debit, "X"),
		tx("2020-04-02", "b", "10", Debit, "X"),
		tx("2020-04-03", "c", "30", Debit, "X"),
		tx("2020-04-04", "d", "20", Debit, "X"),
	}
	f, err := OuterFences(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := decimal.RequireFromString("17.5"); !f.Q1.Equal(want) {
		t.Errorf("Q1 = %v, want %v", f.Q1, want)
	}
	if want := decimal.RequireFromString("32.5"); !f.Q3.Equal(want) {
		t.Errorf("Q3 = %v, want %v", f.Q3, want)
	}
	// IQR = 15, so the outer fences sit 45 beyond the quartiles.
	if want := decimal.RequireFromString("-27.5"); !f.Lower.Equal(want) {
		t.Errorf("Lower = %v, want %v", f.Lower, want)
	}
	if want := decimal.RequireFromString("77.5"); !f.Upper.Equal(want) {
		t.Errorf("Upper = %v, want %v", f.Upper, want)
	}
}

func TestSuspiciousChargesIdenticalAmounts(t *testing.T) {
	// Zero IQR collapses both fences onto the common value; strict
	// inequality means nothing is flagged.
	records := []Transaction{
		tx("2020-04-01", "a", "10", Debit, "X"),
		tx("2020-04-02", "b", "10", Debit, "X"),
		tx("2020-04-03", "c", "10", Debit, "X"),
	}
	got, err := SuspiciousCharges(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no flagged charges, got %v", got)
	}
}

func TestSuspiciousChargesLowOutlier(t *testing.T) {
	// Lower fence = -13 - 3*2 = -19; the -5000 charge is far below it
	// and carries a unique description.
	records := []Transaction{
		tx("2020-04-01", "ACME REFUND REVERSAL", "-5000", Debit, "X"),
		tx("2020-04-02", "coffee", "-10", Debit, "X"),
		tx("2020-04-03", "lunch", "-11", Debit, "X"),
		tx("2020-04-04", "parking", "-12", Debit, "X"),
		tx("2020-04-05", "snacks", "-13", Debit, "X"),
	}
	got, err := SuspiciousCharges(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Description != "ACME REFUND REVERSAL" {
		t.Fatalf("flagged = %v, want only the -5000 charge", got)
	}
}

func TestSuspiciousChargesUpperFenceDebitOnly(t *testing.T) {
	// A large credit above the upper fence must not be flagged; the same
	// amount as a debit must be.
	base := []Transaction{
		tx("2020-04-01", "a", "10", Debit, "X"),
		tx("2020-04-02", "b", "11", Debit, "X"),
		tx("2020-04-03", "c", "12", Debit, "X"),
		tx("2020-04-04", "d", "13", Debit, "X"),
	}

	credit := append(append([]Transaction{}, base...),
		tx("2020-04-05", "payday", "9000", Credit, "X"))
	got, err := SuspiciousCharges(credit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range got {
		if r.Description == "payday" {
			t.Fatalf("credit above upper fence was flagged: %v", got)
		}
	}

	debit := append(append([]Transaction{}, base...),
		tx("2020-04-05", "mystery charge", "9000", Debit, "X"))
	got, err = SuspiciousCharges(debit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, r := range got {
		if r.Description == "mystery charge" {
			found = true
		}
	}
	if !found {
		t.Fatalf("debit above upper fence was not flagged: %v", got)
	}
}

// everydaySpending returns twelve small debits, one per day starting
// April 1st, with amounts -10 through -21. Their quartiles sit around
// -20..-13, putting the lower outer fence near -40.
func everydaySpending() []Transaction {
	out := make([]Transaction, 0, 12)
	for i := 0; i < 12; i++ {
		d := time.Date(2020, 4, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		out = append(out, tx(d, fmt.Sprintf("errand %d", i), fmt.Sprintf("-%d", 10+i), Debit, "X"))
	}
	return out
}

func TestSuspiciousChargesDropsRepeatedDescriptions(t *testing.T) {
	// Two flagged charges share a description: both are treated as a
	// recognized merchant and dropped; the unique one survives.
	records := append(everydaySpending(),
		tx("2020-04-20", "SUBSCRIPTION RENEWAL", "-4000", Debit, "X"),
		tx("2020-04-21", "SUBSCRIPTION RENEWAL", "-4000", Debit, "X"),
		tx("2020-04-22", "WIRE TRANSFER FEE", "-4500", Debit, "X"),
	)
	got, err := SuspiciousCharges(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Description != "WIRE TRANSFER FEE" {
		t.Fatalf("flagged = %v, want only WIRE TRANSFER FEE", got)
	}
}

func TestSuspiciousChargesSorted(t *testing.T) {
	records := append(everydaySpending(),
		tx("2020-04-20", "late big", "-6000", Debit, "X"),
		tx("2020-04-18", "early big", "-5000", Debit, "X"),
	)
	got, err := SuspiciousCharges(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("flagged %d records, want 2", len(got))
	}
	if got[0].Description != "early big" || got[1].Description != "late big" {
		t.Fatalf("flagged order = [%s %s], want date ascending", got[0].Description, got[1].Description)
	}
}

func TestSuspiciousChargesEmptyInput(t *testing.T) {
	got, err := SuspiciousCharges(nil)
	if err != nil {
		t.Fatalf("empty input must be a clean no-activity result, got error %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
