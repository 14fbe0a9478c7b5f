// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const uriPlaceholder = "<db_password>"

var (
	ErrMissingURI     = errors.New("MONGODB_URI is not set")
	ErrPlaceholderURI = errors.New("MONGODB_URI still contains the " + uriPlaceholder + " placeholder")
)

// Config holds every setting used by the commands.
type Config struct {
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	MongoTimeout    time.Duration
	QueryYears      []int

	DataPath       string
	RunMode        string
	ReportSchedule string
	RunAtStartup   bool
	LogLevel       string

	Email EmailConfig
}

// EmailConfig contains configuration for e-mail reports.
type EmailConfig struct {
	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	RecipientEmail string
}

// Enabled reports whether enough is configured to send mail.
func (e EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.RecipientEmail != ""
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then builds a Config from it. Variables already set in
// the environment win over file values, and missing files are ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		MongoURI:        os.Getenv("MONGODB_URI"),
		MongoDatabase:   getEnv("MONGODB_DATABASE", "sample_mflix"),
		MongoCollection: getEnv("MONGODB_COLLECTION", "movies"),
		DataPath:        getEnv("DATA_PATH", "./data"),
		RunMode:         getEnv("RUN_MODE", "once"),
		ReportSchedule:  getEnv("REPORT_SCHEDULE", "0 0 10 * * *"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Email: EmailConfig{
			SMTPHost:       os.Getenv("EMAIL_SMTP_HOST"),
			SenderEmail:    os.Getenv("EMAIL_SENDER"),
			SenderPassword: os.Getenv("EMAIL_PASSWORD"),
			RecipientEmail: os.Getenv("EMAIL_RECIPIENT"),
		},
	}

	var err error
	if cfg.MongoTimeout, err = time.ParseDuration(getEnv("MONGODB_TIMEOUT", "30s")); err != nil {
		return nil, fmt.Errorf("invalid MONGODB_TIMEOUT: %w", err)
	}
	if cfg.QueryYears, err = parseYears(getEnv("QUERY_YEARS", "1975")); err != nil {
		return nil, fmt.Errorf("invalid QUERY_YEARS: %w", err)
	}
	if cfg.Email.SMTPPort, err = strconv.Atoi(getEnv("EMAIL_SMTP_PORT", "587")); err != nil {
		return nil, fmt.Errorf("invalid EMAIL_SMTP_PORT: %w", err)
	}
	if v := os.Getenv("RUN_AT_STARTUP"); v != "" {
		if cfg.RunAtStartup, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid RUN_AT_STARTUP: %w", err)
		}
	}

	switch cfg.RunMode {
	case "once", "scheduler":
	default:
		return nil, fmt.Errorf("invalid RUN_MODE %q: want once or scheduler", cfg.RunMode)
	}

	return cfg, nil
}

// Validate checks the settings needed to reach the database.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return ErrMissingURI
	}
	if strings.Contains(c.MongoURI, uriPlaceholder) {
		return ErrPlaceholderURI
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseYears parses a comma-separated year list. 0 selects all years.
func parseYears(s string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if year < 0 {
			return nil, fmt.Errorf("negative year %d", year)
		}
		years = append(years, year)
	}
	if len(years) == 0 {
		return nil, errors.New("no years given")
	}
	return years, nil
}
