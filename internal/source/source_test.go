package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bankfile/internal/config"
)

func TestTypeIsValid(t *testing.T) {
	tests := []struct {
		in    Type
		valid bool
	}{
		{CSVSource, true},
		{SQLiteSource, true},
		{Type("sheets"), false},
		{Type(""), false},
	}
	for _, tt := range tests {
		if got := tt.in.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%q) = %v, want %v", tt.in, got, tt.valid)
		}
	}
}

func TestCreateCSVSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")
	csv := "Date,Description,Original Description,Amount,Transaction Type,Category,Account Name\n" +
		"01/05/2020,Groceries,GROCERY STORE 001,120.50,debit,Food,Checking\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	f := NewFactory(nil)
	res, err := f.Create(&config.Config{DataSource: "csv"}, path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	records, err := res.Source.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 || records[0].Description != "Groceries" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestCreateCSVSourceRequiresPath(t *testing.T) {
	f := NewFactory(nil)
	if _, err := f.Create(&config.Config{DataSource: "csv"}, ""); err == nil {
		t.Fatal("expected error for missing csv path")
	}
}

func TestCreateInvalidSource(t *testing.T) {
	f := NewFactory(nil)
	if _, err := f.Create(&config.Config{DataSource: "bigquery"}, ""); err == nil {
		t.Fatal("expected error for invalid source type")
	}
}

func TestCreateSQLiteSource(t *testing.T) {
	dir := t.TempDir()
	f := NewFactory(nil)
	res, err := f.Create(&config.Config{
		DataSource:   "sqlite",
		SQLiteDBPath: filepath.Join(dir, "ledger.db"),
	}, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer res.Cleanup()

	records, err := res.Source.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("fresh ledger should be empty, got %d records", len(records))
	}
}
