package core

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func categoryRecords() []Transaction {
	mk := func(date, cat, amount string) Transaction {
		t := tx(date, cat+" purchase", amount, Debit, "X")
		t.Category = cat
		return t
	}
	return []Transaction{
		mk("2020-04-01", "Groceries", "-50"),
		mk("2020-04-02", "Groceries", "-30"),
		mk("2020-04-03", "Groceries", "-20"),
		mk("2020-04-04", "Restaurants", "-40"),
		mk("2020-04-05", "Restaurants", "-45"),
		mk("2020-04-06", "Shopping", "-100"),
		mk("2020-04-07", "Transfer", "-85"),
	}
}

func TestFrequencyOrdering(t *testing.T) {
	got := Frequency(categoryRecords())
	want := []CategoryCount{
		{Category: "Groceries", Count: 3},
		{Category: "Restaurants", Count: 2},
		{Category: "Shopping", Count: 1},
		{Category: "Transfer", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Frequency = %v, want %v", got, want)
	}
}

func TestFrequencyIdempotent(t *testing.T) {
	records := categoryRecords()
	first := Frequency(records)
	second := Frequency(records)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated call differs: %v then %v", first, second)
	}
}

func TestTopByAmount(t *testing.T) {
	records := categoryRecords()
	got, err := TopByAmount(records, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Signed totals: Restaurants and Transfer tie at -85, ahead of
	// Groceries and Shopping at -100; the tie breaks alphabetically.
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0].Category != "Restaurants" || got[1].Category != "Transfer" {
		t.Fatalf("top categories = [%s %s], want tie broken by name", got[0].Category, got[1].Category)
	}
	if want := decimal.RequireFromString("-85"); !got[0].Total.Equal(want) {
		t.Errorf("top total = %v, want %v", got[0].Total, want)
	}
}

func TestTopByAmountRejectsNonPositiveN(t *testing.T) {
	for _, n := range []int{0, -1, -5} {
		if _, err := TopByAmount(categoryRecords(), n); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("n=%d: expected ErrInvalidArgument, got %v", n, err)
		}
	}
}

func TestTopByAmountPartitionsTotal(t *testing.T) {
	records := categoryRecords()
	got, err := TopByAmount(records, len(records)) // n >= distinct categories
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := decimal.Zero
	for _, row := range got {
		sum = sum.Add(row.Total)
	}
	all := decimal.Zero
	for _, r := range records {
		all = all.Add(r.Amount)
	}
	if !sum.Equal(all) {
		t.Fatalf("category totals sum to %v, records sum to %v", sum, all)
	}
}
