// Package memory is an in-process sheets stand-in used by tests and
// when no spreadsheet is configured.
package memory

import (
	"context"
	"fmt"
	"sync"
)

type Table struct {
	Header []string
	Rows   [][]string
}

type Store struct {
	mu     sync.Mutex
	tables map[string]Table
	alerts [][]string
}

func New() *Store {
	return &Store{tables: make(map[string]Table)}
}

// WriteTable replaces the named table.
func (s *Store) WriteTable(_ context.Context, sheet string, header []string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([][]string, len(rows))
	for i, r := range rows {
		copied[i] = append([]string(nil), r...)
	}
	s.tables[sheet] = Table{
		Header: append([]string(nil), header...),
		Rows:   copied,
	}
	return nil
}

// AppendAlert stores the row and returns a synthetic row reference.
func (s *Store) AppendAlert(_ context.Context, row []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, append([]string(nil), row...))
	return fmt.Sprintf("mem:%d", len(s.alerts)), nil
}

// Table returns a written table by sheet name.
func (s *Store) Table(sheet string) (Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[sheet]
	return t, ok
}

// Alerts returns the appended alert rows.
func (s *Store) Alerts() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.alerts))
	for i, r := range s.alerts {
		out[i] = append([]string(nil), r...)
	}
	return out
}
