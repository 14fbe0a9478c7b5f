package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"mflix-insights/movie"
	"mflix-insights/report"
	"mflix-insights/source"
)

type SQLiteStorage struct {
	db       *sql.DB
	dbPath   string
	dataPath string
	logger   *zap.Logger
}

func NewSQLiteStorage(dataPath string, logger *zap.Logger) *SQLiteStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLiteStorage{
		dbPath:   filepath.Join(dataPath, "mflix_insights.db"),
		dataPath: dataPath,
		logger:   logger,
	}
}

func (s *SQLiteStorage) Initialize() error {
	if err := os.MkdirAll(s.dataPath, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	if err := migrationManager.Up(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	s.logger.Info("SQLite database initialized", zap.String("path", s.dbPath))
	return nil
}

// SaveSnapshot replaces the stored movies for year with movies, keeping
// their order.
func (s *SQLiteStorage) SaveSnapshot(ctx context.Context, year int, movies []movie.Movie) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM movies WHERE query_year = ?`, year); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO movies (query_year, position, movie_id, title, year, runtime,
		genres, directors, cast_members, imdb_rating, languages)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range movies {
		lists, err := encodeLists(m)
		if err != nil {
			return fmt.Errorf("failed to encode movie %q: %w", m.Title(), err)
		}
		_, err = stmt.ExecContext(ctx, year, i, m.ID(), m.Title(), m.Year(), m.Runtime(),
			lists[0], lists[1], lists[2], m.IMDbRating(), lists[3])
		if err != nil {
			return fmt.Errorf("failed to insert movie %q: %w", m.Title(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	s.logger.Info("Saved movie snapshot", zap.Int("year", year), zap.Int("count", len(movies)))
	return nil
}

// Movies returns the snapshot saved for q.Year in its original order.
func (s *SQLiteStorage) Movies(ctx context.Context, q source.Query) ([]movie.Movie, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT movie_id, title, year, runtime, genres, directors, cast_members, imdb_rating, languages
	FROM movies
	WHERE query_year = ?
	ORDER BY position
	`, q.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	movies := []movie.Movie{}
	for rows.Next() {
		var (
			f                                  movie.Fields
			genres, directors, cast, languages string
		)
		err := rows.Scan(&f.ID, &f.Title, &f.Year, &f.Runtime, &genres, &directors, &cast, &f.IMDbRating, &languages)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		for _, l := range []struct {
			raw string
			dst *[]string
		}{
			{genres, &f.Genres},
			{directors, &f.Directors},
			{cast, &f.Cast},
			{languages, &f.Languages},
		} {
			if err := json.Unmarshal([]byte(l.raw), l.dst); err != nil {
				return nil, fmt.Errorf("failed to decode movie %q: %w", f.Title, err)
			}
		}
		movies = append(movies, movie.New(f))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read movies: %w", err)
	}

	return movies, nil
}

func encodeLists(m movie.Movie) ([4]string, error) {
	var out [4]string
	for i, list := range [][]string{m.Genres(), m.Directors(), m.Cast(), m.Languages()} {
		data, err := json.Marshal(list)
		if err != nil {
			return out, err
		}
		out[i] = string(data)
	}
	return out, nil
}

func (s *SQLiteStorage) SaveReport(ctx context.Context, r report.Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
	INSERT INTO reports (id, query_year, movie_count, generated_at, payload)
	VALUES (?, ?, ?, ?, ?)
	`, r.ID, r.Year, r.MovieCount, r.GeneratedAt.UTC(), string(payload))
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) GetReport(ctx context.Context, id string) (report.Report, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM reports WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return report.Report{}, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to query report: %w", err)
	}
	return decodeReport(payload)
}

// ListReports returns the newest reports first. limit <= 0 returns all.
func (s *SQLiteStorage) ListReports(ctx context.Context, limit int) ([]report.Report, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
	SELECT payload FROM reports
	ORDER BY generated_at DESC, rowid DESC
	LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []report.Report
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		r, err := decodeReport(payload)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reports: %w", err)
	}
	return reports, nil
}

func decodeReport(payload string) (report.Report, error) {
	var r report.Report
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return report.Report{}, fmt.Errorf("failed to decode report: %w", err)
	}
	return r, nil
}

func (s *SQLiteStorage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStorage) GetDB() (*sql.DB, error) {
	if s.db == nil {
		db, err := sql.Open("sqlite3", s.dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}
	return s.db, nil
}

func (s *SQLiteStorage) GetStats() (map[string]int, error) {
	stats := make(map[string]int)

	queries := []struct {
		key   string
		query string
	}{
		{"movies", "SELECT COUNT(*) FROM movies"},
		{"snapshots", "SELECT COUNT(DISTINCT query_year) FROM movies"},
		{"reports", "SELECT COUNT(*) FROM reports"},
	}
	for _, q := range queries {
		var n int
		if err := s.db.QueryRow(q.query).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to get %s count: %w", q.key, err)
		}
		stats[q.key] = n
	}

	return stats, nil
}

func (s *SQLiteStorage) GetMigrationManager() *MigrationManager {
	return NewMigrationManager(s.db, s.logger)
}

func (s *SQLiteStorage) GetDatabaseVersion() (int64, error) {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return 0, err
	}
	return migrationManager.Version()
}

func (s *SQLiteStorage) RunMigrations() error {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Up()
}

func (s *SQLiteStorage) RollbackMigration() error {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Down()
}

func (s *SQLiteStorage) ResetDatabase() error {
	migrationManager := s.GetMigrationManager()
	if err := migrationManager.Initialize(); err != nil {
		return err
	}
	return migrationManager.Reset()
}
