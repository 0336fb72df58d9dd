package storage

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"bankfile/internal/core"
)

const dateLayout = "2006-01-02"

// SQLiteRepository is the local transaction ledger. Importing the same
// export twice is a no-op: rows are keyed by a content hash.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ImportTransactions inserts records into the ledger, skipping rows
// already present, and reports how many were actually added.
func (r *SQLiteRepository) ImportTransactions(ctx context.Context, records []core.Transaction) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions
			(row_hash, date, description, original_description, amount, transaction_type, category, account_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, t := range records {
		res, err := stmt.ExecContext(ctx,
			rowHash(t),
			core.Day(t.Date).Format(dateLayout),
			t.Description,
			t.OriginalDescription,
			t.Amount.String(),
			string(t.Type),
			t.Category,
			t.Account,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert transaction: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("commit import: %w", err)
	}

	slog.InfoContext(ctx, "Transactions imported",
		"inserted", inserted,
		"skipped", len(records)-inserted)
	return inserted, nil
}

// ListTransactions returns the whole ledger ordered by date.
func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, description, original_description, amount, transaction_type, category, account_name
		FROM transactions
		ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			date   string
			amount string
			t      core.Transaction
			ttype  string
		)
		if err := rows.Scan(&date, &t.Description, &t.OriginalDescription, &amount, &ttype, &t.Category, &t.Account); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("stored date %q: %w", date, err)
		}
		t.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("stored amount %q: %w", amount, err)
		}
		t.Type = core.TransactionType(ttype)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// CountTransactions returns the number of rows in the ledger.
func (r *SQLiteRepository) CountTransactions(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

// rowHash identifies a row by its content so repeated imports of the
// same export stay idempotent.
func rowHash(t core.Transaction) string {
	h := sha256.Sum256([]byte(strings.Join([]string{
		core.Day(t.Date).Format(dateLayout),
		t.Description,
		t.OriginalDescription,
		t.Amount.String(),
		string(t.Type),
		t.Category,
		t.Account,
	}, "|")))
	return hex.EncodeToString(h[:])
}
