package memory

import (
	"context"
	"testing"
)

func TestWriteTableReplaces(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.WriteTable(ctx, "Categories", []string{"Category", "Count"}, [][]string{{"Groceries", "3"}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.WriteTable(ctx, "Categories", []string{"Category", "Count"}, [][]string{{"Shopping", "1"}}); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	table, ok := s.Table("Categories")
	if !ok {
		t.Fatal("table not found")
	}
	if len(table.Rows) != 1 || table.Rows[0][0] != "Shopping" {
		t.Fatalf("rewrite did not replace: %v", table.Rows)
	}
}

func TestAppendAlert(t *testing.T) {
	s := New()
	ctx := context.Background()

	ref, err := s.AppendAlert(ctx, []string{"2020-04-15", "WIRE TRANSFER FEE", "-4500"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if ref != "mem:1" {
		t.Errorf("ref = %s, want mem:1", ref)
	}
	if ref, _ = s.AppendAlert(ctx, []string{"2020-04-16", "x", "-1"}); ref != "mem:2" {
		t.Errorf("second ref = %s, want mem:2", ref)
	}
	if alerts := s.Alerts(); len(alerts) != 2 {
		t.Fatalf("stored %d alerts, want 2", len(alerts))
	}
}
