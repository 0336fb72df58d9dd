package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"
)

type (
	TransactionType string

	// Transaction is one normalized row of a bank export. Date carries no
	// time-of-day component; Amount keeps the sign convention of the
	// source file. OriginalDescription is carried for display only and
	// never drives any analysis.
	Transaction struct {
		Date                time.Time
		Description         string
		OriginalDescription string
		Amount              decimal.Decimal
		Type                TransactionType
		Category            string
		Account             string
	}
)

var (
	ErrEmptyInput      = errors.New("no transactions")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownAccount  = errors.New("unknown account")
)

func (tt TransactionType) Valid() bool {
	return tt == Debit || tt == Credit
}

// Day truncates t to its calendar date in UTC. All date comparisons in
// this package go through Day so time-of-day noise in the source can
// never split a calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
