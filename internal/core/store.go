package core

import (
	"sort"
	"time"
)

// Store holds the transaction table for one analysis session together
// with its derived bounds. It is immutable after construction: every
// analysis reads from it and nothing ever writes back.
type Store struct {
	records  []Transaction
	earliest time.Time
	latest   time.Time
	accounts map[string]bool
}

// NewStore copies records into a store and computes the earliest and
// latest calendar dates plus the distinct account names. An empty
// record set has no defined bounds and is rejected with ErrEmptyInput.
func NewStore(records []Transaction) (*Store, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	rs := make([]Transaction, len(records))
	copy(rs, records)

	earliest := Day(rs[0].Date)
	latest := earliest
	accounts := make(map[string]bool)
	for _, t := range rs {
		d := Day(t.Date)
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
		accounts[t.Account] = true
	}

	return &Store{
		records:  rs,
		earliest: earliest,
		latest:   latest,
		accounts: accounts,
	}, nil
}

func (s *Store) Len() int {
	return len(s.records)
}

// Earliest returns the date of the oldest transaction in the store.
func (s *Store) Earliest() time.Time {
	return s.earliest
}

// Latest returns the date of the newest transaction in the store.
func (s *Store) Latest() time.Time {
	return s.latest
}

// Accounts returns the distinct account names, sorted.
func (s *Store) Accounts() []string {
	out := make([]string, 0, len(s.accounts))
	for a := range s.accounts {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

func (s *Store) HasAccount(name string) bool {
	return s.accounts[name]
}
