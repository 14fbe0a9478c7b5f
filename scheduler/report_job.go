package scheduler

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mflix-insights/movie"
	"mflix-insights/report"
	"mflix-insights/source"
)

// maxConcurrentYears caps how many years are fetched at once.
const maxConcurrentYears = 4

// Store persists what a report run produces.
type Store interface {
	SaveSnapshot(ctx context.Context, year int, movies []movie.Movie) error
	SaveReport(ctx context.Context, r report.Report) error
}

// Notifier delivers finished reports.
type Notifier interface {
	NotifyReports(reports []report.Report) error
}

// Result is the outcome for one year.
type Result struct {
	Year   int
	Movies []movie.Movie
	Report report.Report
	Err    error
}

// ReportJob fetches movies per configured year, stores a snapshot and a
// report for each, and sends the reports.
type ReportJob struct {
	source   source.Source
	store    Store
	notifier Notifier
	years    []int
	logger   *zap.Logger
}

// NewReportJob creates the job. store and notifier may be nil.
func NewReportJob(src source.Source, store Store, notifier Notifier, years []int, logger *zap.Logger) *ReportJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportJob{
		source:   src,
		store:    store,
		notifier: notifier,
		years:    years,
		logger:   logger,
	}
}

// Name returns the name of the job
func (j *ReportJob) Name() string {
	return "movie_report"
}

// Collect processes every year and returns one Result per year, in the
// configured order. A failing year does not stop the others.
func (j *ReportJob) Collect(ctx context.Context) []Result {
	results := make([]Result, len(j.years))

	var g errgroup.Group
	g.SetLimit(maxConcurrentYears)
	for i, year := range j.years {
		g.Go(func() error {
			results[i] = j.collectYear(ctx, year)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (j *ReportJob) collectYear(ctx context.Context, year int) Result {
	res := Result{Year: year}
	log := j.logger.With(zap.Int("year", year))

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	movies, err := j.source.Movies(ctx, source.Query{Year: year})
	if err != nil {
		res.Err = fmt.Errorf("failed to fetch movies for %d: %w", year, err)
		log.Error("Fetch failed", zap.Error(err))
		return res
	}
	res.Movies = movies
	res.Report = report.Build(year, movies)
	log.Info("Built report", zap.Int("movies", len(movies)), zap.String("report_id", res.Report.ID))

	if j.store == nil {
		return res
	}
	if err := j.store.SaveSnapshot(ctx, year, movies); err != nil {
		res.Err = fmt.Errorf("failed to save snapshot for %d: %w", year, err)
		log.Error("Snapshot failed", zap.Error(err))
		return res
	}
	if err := j.store.SaveReport(ctx, res.Report); err != nil {
		res.Err = fmt.Errorf("failed to save report for %d: %w", year, err)
		log.Error("Saving report failed", zap.Error(err))
	}
	return res
}

// Run executes the job. It fails only when no year produced a report.
func (j *ReportJob) Run(ctx context.Context) error {
	j.logger.Info("Running movie report job", zap.Ints("years", j.years))

	results := j.Collect(ctx)

	var reports []report.Report
	var lastErr error
	for _, res := range results {
		if res.Err != nil {
			lastErr = res.Err
			continue
		}
		reports = append(reports, res.Report)
	}

	j.logger.Info("Movie report job complete",
		zap.Int("succeeded", len(reports)),
		zap.Int("failed", len(results)-len(reports)))

	if len(reports) == 0 && lastErr != nil {
		return lastErr
	}

	if j.notifier != nil && len(reports) > 0 {
		if err := j.notifier.NotifyReports(reports); err != nil {
			j.logger.Error("Failed to send report notification", zap.Error(err))
		}
	}

	return nil
}
