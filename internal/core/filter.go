package core

import (
	"fmt"
	"time"
)

// Range restricts an analysis to a date window and optionally a single
// account. Zero dates default to the store's own bounds; an empty
// account name means all accounts.
type Range struct {
	Start   time.Time
	End     time.Time
	Account string
}

// Select returns the sub-view of the store matching r. Both date bounds
// are inclusive and compared as calendar dates; the account, when set,
// must match exactly (case-sensitive). A window that matches nothing is
// an empty, non-error result — the caller decides what "no data" means.
//
// An end date before the start date is rejected with ErrInvalidArgument,
// and an account name the store has never seen with ErrUnknownAccount.
func (s *Store) Select(r Range) ([]Transaction, error) {
	start := s.earliest
	if !r.Start.IsZero() {
		start = Day(r.Start)
	}
	end := s.latest
	if !r.End.IsZero() {
		end = Day(r.End)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date %s before start date %s",
			ErrInvalidArgument, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if r.Account != "" && !s.HasAccount(r.Account) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccount, r.Account)
	}

	var out []Transaction
	for _, t := range s.records {
		d := Day(t.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		if r.Account != "" && t.Account != r.Account {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
