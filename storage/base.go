package storage

import (
	"context"
	"errors"

	"mflix-insights/movie"
	"mflix-insights/report"
	"mflix-insights/source"
)

var ErrReportNotFound = errors.New("report not found")

// StorageInterface is the persistence used by the report job and the CLI.
type StorageInterface interface {
	source.Source
	SaveSnapshot(ctx context.Context, year int, movies []movie.Movie) error
	SaveReport(ctx context.Context, r report.Report) error
	GetReport(ctx context.Context, id string) (report.Report, error)
	ListReports(ctx context.Context, limit int) ([]report.Report, error)
	Close() error
}
