package sheets

import "context"

// Ports for outbound adapters.
type (
	// TableWriter replaces the contents of a named sheet with one
	// rendered report table.
	TableWriter interface {
		WriteTable(ctx context.Context, sheet string, header []string, rows [][]string) error
	}

	// AlertAppender appends one suspicious-charge row to the alert log.
	AlertAppender interface {
		AppendAlert(ctx context.Context, row []string) (rowRef string, err error)
	}
)
