package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"bankfile/internal/core"
	"bankfile/internal/report"
	"bankfile/internal/sheets"
)

// ExportService pushes computed report tables to a spreadsheet, one
// sheet per report, written concurrently.
type ExportService struct {
	analysis    *AnalysisService
	writer      sheets.TableWriter
	sheetPrefix string
	topN        int
}

func NewExportService(analysis *AnalysisService, writer sheets.TableWriter, sheetPrefix string, topN int) *ExportService {
	return &ExportService{
		analysis:    analysis,
		writer:      writer,
		sheetPrefix: sheetPrefix,
		topN:        topN,
	}
}

// Export recomputes the category, weekday, and monthly reports over
// the filtered view and writes each to its own sheet. Any single sheet
// failure fails the export.
func (s *ExportService) Export(ctx context.Context, r core.Range) error {
	counts, err := s.analysis.CategoryFrequency(r)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	totals, err := s.analysis.TopCategories(r, s.topN)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	weekdays, err := s.analysis.WeekdayStats(r)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	months, err := s.analysis.PeriodTotals(r, core.Month)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		header, rows := report.FrequencyTable(counts)
		return s.writeSheet(gctx, "Categories", header, rows)
	})
	g.Go(func() error {
		header, rows := report.TopCategoriesTable(totals)
		return s.writeSheet(gctx, "TopCategories", header, rows)
	})
	g.Go(func() error {
		header, rows := report.WeekdayTable(weekdays)
		return s.writeSheet(gctx, "Weekdays", header, rows)
	})
	g.Go(func() error {
		header, rows := report.PeriodTable(months)
		return s.writeSheet(gctx, "Months", header, rows)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	slog.InfoContext(ctx, "Exported report sheets", "prefix", s.sheetPrefix, "sheets", 4)
	return nil
}

func (s *ExportService) writeSheet(ctx context.Context, name string, header []string, rows [][]string) error {
	sheet := s.sheetPrefix + " " + name
	if err := s.writer.WriteTable(ctx, sheet, header, rows); err != nil {
		return fmt.Errorf("write sheet %s: %w", sheet, err)
	}
	return nil
}
