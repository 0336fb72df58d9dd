package source

import (
	"context"
	"fmt"
	"log/slog"

	"bankfile/internal/config"
	"bankfile/internal/core"
	"bankfile/internal/mint"
	"bankfile/internal/storage"
)

// Factory builds sources from application configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the source named by cfg.DataSource. An explicit
// csvPath overrides the configured one so a subcommand flag can point
// at any export file.
func (f *Factory) Create(cfg *config.Config, csvPath string) (*Result, error) {
	t := Type(cfg.DataSource)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid data source: %s (valid: %v)", cfg.DataSource, Types())
	}

	switch t {
	case CSVSource:
		path := cfg.CSVPath
		if csvPath != "" {
			path = csvPath
		}
		if path == "" {
			return nil, fmt.Errorf("csv source requires a file path")
		}
		f.logger.Info("Using CSV source", "path", path)
		return &Result{Source: &csvSource{path: path}}, nil

	case SQLiteSource:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite source: %w", err)
		}
		f.logger.Info("Using SQLite source", "db_path", cfg.SQLiteDBPath)
		return &Result{Source: &sqliteSource{repo: repo}, Cleanup: repo.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported data source: %s", t)
	}
}

type csvSource struct {
	path string
}

func (s *csvSource) Load(_ context.Context) ([]core.Transaction, error) {
	return mint.LoadFile(s.path)
}

type sqliteSource struct {
	repo *storage.SQLiteRepository
}

func (s *sqliteSource) Load(ctx context.Context) ([]core.Transaction, error) {
	return s.repo.ListTransactions(ctx)
}
