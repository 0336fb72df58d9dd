// Package mint reads Mint-style transaction CSV exports and normalizes
// them into the core transaction table. All date and amount coercion
// happens here; the analysis engine only ever sees parsed records.
package mint

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bankfile/internal/core"
)

// Required export columns. Labels and Notes may be present and are
// dropped without being read.
var requiredColumns = []string{
	"Date",
	"Description",
	"Original Description",
	"Amount",
	"Transaction Type",
	"Category",
	"Account Name",
}

// Exports in the wild mix date styles, sometimes within one file.
var dateFormats = []string{
	"01/02/2006",
	"2006-01-02",
	"01-02-2006",
}

// LoadFile reads the export at path.
func LoadFile(path string) ([]core.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transactions file: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Read parses a CSV export from r. The header row decides column
// positions, so column order and extra columns don't matter.
func Read(r io.Reader) ([]core.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty export: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var out []core.Transaction
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++
		t, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q in header", name)
		}
	}
	return cols, nil
}

func parseRow(row []string, cols map[string]int) (core.Transaction, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	date, err := parseDate(field("Date"))
	if err != nil {
		return core.Transaction{}, err
	}
	amount, err := parseAmount(field("Amount"))
	if err != nil {
		return core.Transaction{}, err
	}
	ttype := core.TransactionType(strings.ToLower(field("Transaction Type")))
	if !ttype.Valid() {
		return core.Transaction{}, fmt.Errorf("unknown transaction type %q", field("Transaction Type"))
	}

	return core.Transaction{
		Date:                date,
		Description:         field("Description"),
		OriginalDescription: field("Original Description"),
		Amount:              amount,
		Type:                ttype,
		Category:            field("Category"),
		Account:             field("Account Name"),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseAmount strips currency decoration ("$1,234.56") before parsing.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
