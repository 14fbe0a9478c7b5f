package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockJob struct {
	name     string
	runCount atomic.Int32
}

func (j *mockJob) Name() string {
	return j.name
}

func (j *mockJob) Run(ctx context.Context) error {
	j.runCount.Add(1)
	return nil
}

func TestScheduler(t *testing.T) {
	s := NewScheduler(nil)
	job := &mockJob{name: "test_job"}

	require.NoError(t, s.AddJob("* * * * * *", job))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return job.runCount.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	before := job.runCount.Load()
	require.NoError(t, s.RunJobNow("test_job"))
	assert.GreaterOrEqual(t, job.runCount.Load(), before+1)

	assert.ErrorIs(t, s.RunJobNow("non_existent_job"), ErrJobNotFound)
}

func TestAddJob(t *testing.T) {
	s := NewScheduler(nil)
	job := &mockJob{name: "daily_report"}

	require.NoError(t, s.AddJob("0 0 10 * * *", job))
	assert.ErrorIs(t, s.AddJob("0 0 17 * * *", job), ErrJobExists)
	assert.Error(t, s.AddJob("not a spec", &mockJob{name: "bad"}))

	require.NoError(t, s.RunJobNow("daily_report"))
	assert.Equal(t, int32(1), job.runCount.Load())
}
