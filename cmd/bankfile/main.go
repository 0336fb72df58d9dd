package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"bankfile/internal/amqp"
	"bankfile/internal/cli"
	"bankfile/internal/core"
	"bankfile/internal/mint"
	"bankfile/internal/report"
	"bankfile/internal/services"
	gsheet "bankfile/internal/sheets/google"
	"bankfile/internal/source"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	ctx := context.Background()

	var err error
	switch cmd {
	case "import":
		err = runImport(ctx, logger, args)
	case "suspicious":
		err = runSuspicious(ctx, logger, args)
	case "cashflow":
		err = runCashflow(ctx, logger, args)
	case "categories":
		err = runCategories(ctx, logger, args)
	case "top":
		err = runTop(ctx, logger, args)
	case "weekdays":
		err = runWeekdays(ctx, logger, args)
	case "periods":
		err = runPeriods(ctx, logger, args)
	case "chart":
		err = runChart(ctx, logger, args)
	case "search":
		err = runSearch(ctx, logger, args)
	case "export":
		err = runExport(ctx, logger, args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("Command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: bankfile <command> [flags]

Commands:
  import      load a CSV export into the local SQLite ledger
  suspicious  flag stand-out charges and publish alerts
  cashflow    summarize income against spending
  categories  count transactions per category
  top         rank categories by total amount
  weekdays    per-weekday spending statistics
  periods     totals per week, month, or year
  chart       monthly totals as a bar chart
  search      find transactions by description
  export      write report tables to Google Sheets

Run "bankfile <command> -h" for command flags.
`)
}

// viewFlags attaches the filtering flags every analysis command shares.
type viewFlags struct {
	file    *string
	start   *string
	end     *string
	account *string
}

func newViewFlags(fs *flag.FlagSet) *viewFlags {
	return &viewFlags{
		file:    fs.String("file", "", "CSV export to analyze (overrides CSV_PATH)"),
		start:   fs.String("start", "", "start date, MM-DD-YYYY (inclusive)"),
		end:     fs.String("end", "", "end date, MM-DD-YYYY (inclusive)"),
		account: fs.String("account", "", "restrict to one account name"),
	}
}

func (v *viewFlags) Range() (core.Range, error) {
	start, err := cli.ParseDate(*v.start)
	if err != nil {
		return core.Range{}, err
	}
	end, err := cli.ParseDate(*v.end)
	if err != nil {
		return core.Range{}, err
	}
	return core.Range{Start: start, End: end, Account: *v.account}, nil
}

// newAnalysis loads the configured transaction set and wires the
// analysis service, with an AMQP client attached only when asked for
// and configured.
func newAnalysis(ctx context.Context, logger *slog.Logger, csvPath string, withAlerts bool) (*services.AnalysisService, func(), error) {
	cfg := cli.LoadAndValidateConfig(logger)

	res, err := source.NewFactory(logger).Create(cfg, csvPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if res.Cleanup != nil {
			if err := res.Cleanup(); err != nil {
				logger.Error("Source cleanup failed", "error", err)
			}
		}
	}

	records, err := res.Source.Load(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	store, err := core.NewStore(records)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	var amqpClient *amqp.Client
	if withAlerts && cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without alerts", "error", err)
		}
	}

	svc := services.NewAnalysisService(store, amqpClient)
	closeAll := func() {
		if err := svc.Close(); err != nil {
			logger.Error("Service close failed", "error", err)
		}
		cleanup()
	}
	return svc, closeAll, nil
}

func runImport(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("file", "", "CSV export to import (overrides CSV_PATH)")
	fs.Parse(args)

	cfg := cli.LoadAndValidateConfig(logger)
	path := cfg.CSVPath
	if *file != "" {
		path = *file
	}

	records, err := mint.LoadFile(path)
	if err != nil {
		return err
	}

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	start := time.Now()
	inserted, err := repo.ImportTransactions(ctx, records)
	if err != nil {
		return err
	}

	logger.Info("Import complete",
		"file", path,
		"read", len(records),
		"inserted", inserted,
		"skipped", len(records)-inserted,
		"duration", time.Since(start).Round(time.Millisecond))
	fmt.Printf("Imported %d of %d transactions (%d already present).\n",
		inserted, len(records), len(records)-inserted)
	return nil
}

func runSuspicious(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("suspicious", flag.ExitOnError)
	view := newViewFlags(fs)
	fs.Parse(args)

	r, err := view.Range()
	if err != nil {
		return err
	}

	svc, done, err := newAnalysis(ctx, logger, *view.file, true)
	if err != nil {
		return err
	}
	defer done()

	flagged, err := svc.SuspiciousCharges(ctx, r)
	if err != nil {
		return err
	}
	fmt.Print(report.RenderSuspicious(flagged))
	return nil
}

func runCashflow(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("cashflow", flag.ExitOnError)
	view := newViewFlags(fs)
	fs.Parse(args)

	r, err := view.Range()
	if err != nil {
		return err
	}

	svc, done, err := newAnalysis(ctx, logger, *view.file, false)
	if err != nil {
		return err
	}
	defer done()

	sum, err := svc.Cashflow(r)
	if err != nil {
		return err
	}
	fmt.Print(report.RenderCashflow(sum))
	return nil
}

func runCategories(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	view := newViewFlags(fs)
	fs.Parse(args)

	r, err := view.Range()
	if err != nil {
		return err
	}

	svc, done, err := newAnalysis(ctx, logger, *view.file, false)
	if err != nil {
		return err
	}
	defer done()

	counts, err := svc.CategoryFrequency(r)
	if err != nil {
		return err
	}
	fmt.Print(report.RenderFrequency(counts))
	return nil
}

func runTop(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("top", flag.ExitOnError)
	view := newViewFlags(fs)
	n := fs.Int("n", 0, "number of categories (defaults to TOP_CATEGORIES)")
	fs.Parse(args)

	r, err := view.Range()
	if err != nil {
		return err
	}

	svc, done, err := newAnalysis(ctx, logger, *view.file, false)
	if err != nil {
		return err
	}
	defer done()

	limit := *n
	if limit == 0 {
		limit = cli.LoadAndValidateConfig(logger).TopCategories
	}

	totals, err := svc.TopCategories(r, limit)
	if err != nil {
		return err
	}
	fmt.Print(report.RenderTopCategories(totals))
	return nil
}

func runWeekdays(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("weekdays", flag.ExitOnError)
	view := newViewFlags(fs)
	fs.Parse(args)

	r, err := view.Range()
	if err != nil {
		return err
	}

	svc, done, err := newAnalysis(ctx, logger, *view.file, false)
	if err != nil {
		return err
	}
	defer done()

	stats, err := svc.WeekdayStats(r)
	if err != nil {
		return err
	}
	fmt.Print(report.RenderWeekdays(stats))
	return nil
}

func runPeriods(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("periods", flag.ExitOnError)
	view := newViewFlags(fs)
	by := fs.String("by", "month", "granularity: week, month, or year")
	fs.Parse(args)

	r, err := view.Range()
	if err != nil {
		return err
	}
	g, err := core.ParseGranularity(*by)
	if err != nil {
		return err
	}

	svc, done, err := newAnalysis(ctx, logger, *view.file, false)
	if err != nil {
		return err
	}
	defer done()

	periods, err := svc.PeriodTotals(r, g)
	if err != nil {
		return err
	}
	fmt.Print(report.RenderPeriods(periods))
	return nil
}

func runChart(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	view := newViewFlags(fs)
	fs.Parse(args)

	r, err := view.Range()
	if err != nil {
		return err
	}

	svc, done, err := newAnalysis(ctx, logger, *view.file, false)
	if err != nil {
		return err
	}
	defer done()

	months, err := svc.PeriodTotals(r, core.Month)
	if err != nil {
		return err
	}
	fmt.Print(report.Chart(months))
	return nil
}

func runSearch(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	view := newViewFlags(fs)
	query := fs.String("q", "", "text to match in descriptions (case-insensitive)")
	fs.Parse(args)

	q := *query
	if q == "" && fs.NArg() > 0 {
		q = fs.Arg(0)
	}

	r, err := view.Range()
	if err != nil {
		return err
	}

	svc, done, err := newAnalysis(ctx, logger, *view.file, false)
	if err != nil {
		return err
	}
	defer done()

	matches, err := svc.Search(r, q)
	if err != nil {
		return err
	}
	fmt.Print(report.RenderTransactions(matches))
	return nil
}

func runExport(ctx context.Context, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	view := newViewFlags(fs)
	fs.Parse(args)

	r, err := view.Range()
	if err != nil {
		return err
	}

	cfg := cli.LoadAndValidateConfig(logger)
	if cfg.GoogleSpreadsheetID == "" {
		return fmt.Errorf("export requires GOOGLE_SPREADSHEET_ID")
	}

	writer, err := gsheet.NewFromEnv(ctx)
	if err != nil {
		return fmt.Errorf("initialize Google Sheets client: %w", err)
	}

	svc, done, err := newAnalysis(ctx, logger, *view.file, false)
	if err != nil {
		return err
	}
	defer done()

	export := services.NewExportService(svc, writer, cfg.ReportSheetPrefix, cfg.TopCategories)
	if err := export.Export(ctx, r); err != nil {
		return err
	}
	fmt.Println("Export complete.")
	return nil
}
