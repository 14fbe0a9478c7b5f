package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var (
	ErrJobExists   = errors.New("job already registered")
	ErrJobNotFound = errors.New("job not registered")
)

// JobTimeout bounds a single job run.
const JobTimeout = 30 * time.Minute

// Job represents a scheduled job
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	cron      *cron.Cron
	jobs      map[string]Job
	isRunning bool
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler. Specs use six fields, seconds first.
func NewScheduler(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger.Named("cron")))
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger)),
		),
		jobs:   make(map[string]Job),
		logger: logger,
	}
}

// AddJob adds a job to the scheduler with a cron specification
func (s *Scheduler) AddJob(spec string, job Job) error {
	name := job.Name()
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("%w: %s", ErrJobExists, name)
	}

	_, err := s.cron.AddFunc(spec, func() {
		s.logger.Info("Starting scheduled job", zap.String("job", name))
		if err := s.run(job); err != nil {
			s.logger.Error("Scheduled job failed", zap.String("job", name), zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add job %s: %w", name, err)
	}

	s.jobs[name] = job
	return nil
}

func (s *Scheduler) run(job Job) error {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), JobTimeout)
	defer cancel()

	if err := job.Run(ctx); err != nil {
		return err
	}
	s.logger.Info("Completed job",
		zap.String("job", job.Name()),
		zap.Duration("duration", time.Since(startTime)))
	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	if s.isRunning {
		return
	}
	s.cron.Start()
	s.isRunning = true
	s.logger.Info("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	if !s.isRunning {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	s.logger.Info("Scheduler stopped")
}

// RunJobNow runs a job immediately outside of schedule
func (s *Scheduler) RunJobNow(name string) error {
	job, exists := s.jobs[name]
	if !exists {
		return fmt.Errorf("%w: %s", ErrJobNotFound, name)
	}

	s.logger.Info("Manually running job", zap.String("job", name))
	return s.run(job)
}
