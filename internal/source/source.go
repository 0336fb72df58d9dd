// Package source loads transaction sets from a configured backing
// store, either a CSV export read directly or the local SQLite ledger.
package source

import (
	"context"

	"bankfile/internal/core"
)

// Source yields the full transaction set held by one backing store.
type Source interface {
	Load(ctx context.Context) ([]core.Transaction, error)
}

// CleanupFunc releases resources held by a source.
type CleanupFunc func() error

// Result carries a source instance together with its cleanup function,
// which may be nil.
type Result struct {
	Source  Source
	Cleanup CleanupFunc
}

// Type selects the backing store.
type Type string

const (
	CSVSource    Type = "csv"
	SQLiteSource Type = "sqlite"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case CSVSource, SQLiteSource:
		return true
	default:
		return false
	}
}

// Types lists all valid source types.
func Types() []Type {
	return []Type{CSVSource, SQLiteSource}
}
