package services

import (
	"context"
	"fmt"
	"log/slog"

	"bankfile/internal/amqp"
	"bankfile/internal/core"
	applog "bankfile/internal/log"
)

// AnalysisService runs analyses over one loaded transaction set and,
// when an AMQP client is wired in, publishes an alert for every
// suspicious charge it finds.
type AnalysisService struct {
	store      *core.Store
	amqpClient *amqp.Client
}

func NewAnalysisService(store *core.Store, amqpClient *amqp.Client) *AnalysisService {
	return &AnalysisService{
		store:      store,
		amqpClient: amqpClient,
	}
}

func (s *AnalysisService) Store() *core.Store {
	return s.store
}

// SuspiciousCharges detects stand-out charges inside the filtered view
// and publishes one alert per flagged charge. Publish failures are
// logged and swallowed: the analysis result stands on its own.
func (s *AnalysisService) SuspiciousCharges(ctx context.Context, r core.Range) ([]core.Transaction, error) {
	records, err := s.store.Select(r)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}

	flagged, err := core.SuspiciousCharges(records)
	if err != nil {
		return nil, fmt.Errorf("detect suspicious charges: %w", err)
	}

	for _, t := range flagged {
		if err := s.publishAlert(ctx, t); err != nil {
			fields := applog.NewFields().
				WithComponent(applog.ComponentAnalysis).
				WithOperation(applog.OpPublish).
				WithCharge(t.Description, t.Amount.StringFixed(2), t.Account).
				WithError(err)
			slog.ErrorContext(ctx, "Failed to publish charge alert", fields.ToSlice()...)
		}
	}

	return flagged, nil
}

// Cashflow summarizes income against spending over the filtered view.
func (s *AnalysisService) Cashflow(r core.Range) (core.CashflowSummary, error) {
	records, err := s.store.Select(r)
	if err != nil {
		return core.CashflowSummary{}, fmt.Errorf("select transactions: %w", err)
	}
	return core.Summarize(records), nil
}

// CategoryFrequency counts transactions per category over the filtered view.
func (s *AnalysisService) CategoryFrequency(r core.Range) ([]core.CategoryCount, error) {
	records, err := s.store.Select(r)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	return core.Frequency(records), nil
}

// TopCategories ranks the n categories with the largest signed totals.
func (s *AnalysisService) TopCategories(r core.Range, n int) ([]core.CategoryTotal, error) {
	records, err := s.store.Select(r)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	totals, err := core.TopByAmount(records, n)
	if err != nil {
		return nil, fmt.Errorf("rank categories: %w", err)
	}
	return totals, nil
}

// WeekdayStats computes per-weekday spending statistics over the
// filtered view.
func (s *AnalysisService) WeekdayStats(r core.Range) ([]core.WeekdayStats, error) {
	records, err := s.store.Select(r)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	return core.ByDayOfWeek(records), nil
}

// PeriodTotals sums amounts per week, month, or year over the filtered
// view, with the change against each prior period.
func (s *AnalysisService) PeriodTotals(r core.Range, g core.Granularity) ([]core.PeriodTotal, error) {
	records, err := s.store.Select(r)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	periods, err := core.ByPeriod(records, g)
	if err != nil {
		return nil, fmt.Errorf("group by period: %w", err)
	}
	return periods, nil
}

// Search returns transactions whose description contains the query,
// case-insensitively, within the filtered view.
func (s *AnalysisService) Search(r core.Range, query string) ([]core.Transaction, error) {
	records, err := s.store.Select(r)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	return core.Search(records, query), nil
}

func (s *AnalysisService) publishAlert(ctx context.Context, t core.Transaction) error {
	if s.amqpClient == nil {
		slog.DebugContext(ctx, "AMQP client not available, skipping charge alert")
		return nil
	}
	return s.amqpClient.PublishChargeAlert(ctx, t)
}

// Close releases the AMQP connection if one was wired in.
func (s *AnalysisService) Close() error {
	if s.amqpClient == nil {
		return nil
	}
	if err := s.amqpClient.Close(); err != nil {
		return fmt.Errorf("close analysis service: %w", err)
	}
	return nil
}
