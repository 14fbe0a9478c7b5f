package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mflix-insights/notifier"
	"mflix-insights/report"
	"mflix-insights/scheduler"
	"mflix-insights/source"
	"mflix-insights/storage"
)

var (
	reportYear    int
	reportOffline bool
	historyLimit  int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download movies for QUERY_YEARS, store a snapshot and print the answers",
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the answers for one year",
	Long: `Answers every question for the movies of one year. With --offline the
movies come from the last snapshot stored by fetch instead of MongoDB.

Example:
  mflix-insights report --year 1975
  mflix-insights report --year 1975 --offline`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored reports, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var showCmd = &cobra.Command{
	Use:   "show [report-id]",
	Short: "Print a stored report",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var testEmailCmd = &cobra.Command{
	Use:   "test-email",
	Short: "Send the latest stored report to EMAIL_RECIPIENT to verify SMTP settings",
	Args:  cobra.NoArgs,
	RunE:  runTestEmail,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the report job on REPORT_SCHEDULE until interrupted",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	reportCmd.Flags().IntVar(&reportYear, "year", 1975, "Release year to analyze (0 for all years)")
	reportCmd.Flags().BoolVar(&reportOffline, "offline", false, "Read the stored snapshot instead of MongoDB")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of reports (0 for all)")
}

func openStorage() (*storage.SQLiteStorage, error) {
	store := storage.NewSQLiteStorage(cfg.DataPath, logger)
	if err := store.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return store, nil
}

func connectMongo(ctx context.Context) (*source.MongoSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: set it in the environment or the .env file", err)
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
	defer cancel()
	return source.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection, logger)
}

func newNotifier() scheduler.Notifier {
	if !cfg.Email.Enabled() {
		logger.Info("Email notifications disabled: missing configuration")
		return nil
	}
	n, err := notifier.NewEmailNotifier(cfg.Email, logger)
	if err != nil {
		logger.Warn("Failed to create email notifier", zap.Error(err))
		return nil
	}
	return n
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	mongo, err := connectMongo(ctx)
	if err != nil {
		return err
	}
	defer mongo.Close(context.Background())
	fmt.Fprintln(out, "Pinged your deployment. You successfully connected to MongoDB!")

	ctx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
	defer cancel()

	job := scheduler.NewReportJob(mongo, store, nil, cfg.QueryYears, logger)
	var failed error
	for _, res := range job.Collect(ctx) {
		if res.Err != nil {
			fmt.Fprintf(out, "Movies from %s: %v\n", yearLabel(res.Year), res.Err)
			failed = res.Err
			continue
		}
		fmt.Fprintf(out, "Downloaded movies from %s: %d\n", yearLabel(res.Year), len(res.Movies))
		for _, m := range res.Movies {
			fmt.Fprintln(out, m)
		}
		printReport(out, res.Report)
	}
	return failed
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var src source.Source
	if reportOffline {
		store, err := openStorage()
		if err != nil {
			return err
		}
		defer store.Close()
		src = store
	} else {
		mongo, err := connectMongo(ctx)
		if err != nil {
			return err
		}
		defer mongo.Close(context.Background())
		src = mongo
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
	defer cancel()

	movies, err := src.Movies(ctx, source.Query{Year: reportYear})
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), report.Build(reportYear, movies))
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	reports, err := store.ListReports(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(reports) == 0 {
		fmt.Fprintln(out, "No reports stored yet")
		return nil
	}
	for _, r := range reports {
		fmt.Fprintf(out, "%s  %s  %-9s  %d movies\n",
			r.ID, r.GeneratedAt.Format("2006-01-02 15:04:05"), r.Label(), r.MovieCount)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.GetReport(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), r)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	mongo, err := connectMongo(ctx)
	if err != nil {
		return err
	}
	defer mongo.Close(context.Background())

	sched := scheduler.NewScheduler(logger)
	job := scheduler.NewReportJob(mongo, store, newNotifier(), cfg.QueryYears, logger)
	if err := sched.AddJob(cfg.ReportSchedule, job); err != nil {
		return err
	}

	sched.Start()
	defer sched.Stop()
	logger.Info("Scheduler running", zap.String("schedule", cfg.ReportSchedule))

	if cfg.RunAtStartup {
		logger.Info("Running initial report at startup")
		if err := sched.RunJobNow(job.Name()); err != nil {
			logger.Error("Error running initial job", zap.Error(err))
		}
	}

	displayDatabaseStats(store)

	<-ctx.Done()
	logger.Info("Shutting down")
	return nil
}

func runTestEmail(cmd *cobra.Command, args []string) error {
	n, err := notifier.NewEmailNotifier(cfg.Email, logger)
	if err != nil {
		return err
	}

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	reports, err := store.ListReports(cmd.Context(), 1)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		reports = []report.Report{report.Build(0, nil)}
	}

	if err := n.NotifyReports(reports); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Test email sent to %s\n", cfg.Email.RecipientEmail)
	return nil
}

func printReport(out io.Writer, r report.Report) {
	fmt.Fprintf(out, "\nReport %s\n", r.ID)
	for _, line := range r.Lines() {
		fmt.Fprintf(out, "  %s\n", line)
	}
}

func yearLabel(year int) string {
	if year == 0 {
		return "all years"
	}
	return fmt.Sprint(year)
}

func displayDatabaseStats(store *storage.SQLiteStorage) {
	stats, err := store.GetStats()
	if err != nil {
		logger.Warn("Error getting database stats", zap.Error(err))
		return
	}
	logger.Info("Database statistics",
		zap.Int("movies", stats["movies"]),
		zap.Int("snapshots", stats["snapshots"]),
		zap.Int("reports", stats["reports"]))
}
