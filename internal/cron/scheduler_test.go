package cron

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/0xPuncker/job-grid/pkg/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func everySecond(name, task string, enabled bool) types.ScheduledJob {
	return types.ScheduledJob{
		Name:        name,
		Schedule:    "*/1 * * * * *",
		TaskName:    task,
		Enabled:     enabled,
		Description: name + " description",
	}
}

func TestSchedulerRunsTask(t *testing.T) {
	var counter int
	var mu sync.Mutex

	scheduler := NewScheduler(testLogger(), types.SchedulerConfig{MaxConcurrent: 1})
	scheduler.RegisterTask("warm-grid", func() error {
		mu.Lock()
		counter++
		mu.Unlock()
		return nil
	})

	require.NoError(t, scheduler.LoadPredefinedJobs([]types.ScheduledJob{everySecond("warmup", "warm-grid", true)}))
	require.NoError(t, scheduler.Start())

	time.Sleep(2500 * time.Millisecond)
	scheduler.Stop()

	mu.Lock()
	assert.Greater(t, counter, 0)
	mu.Unlock()

	jobs := scheduler.ListJobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "warmup", jobs[0].Name)
	assert.Equal(t, "*/1 * * * * *", jobs[0].Schedule)
}

func TestSchedulerTaskErrorIsLogged(t *testing.T) {
	var calls int
	var mu sync.Mutex

	scheduler := NewScheduler(testLogger(), types.SchedulerConfig{})
	scheduler.RegisterTask("failing", func() error {
		mu.Lock()
		calls++
		mu.Unlock()
		return errors.New("boom")
	})

	require.NoError(t, scheduler.LoadPredefinedJobs([]types.ScheduledJob{everySecond("failing-job", "failing", true)}))
	require.NoError(t, scheduler.Start())

	time.Sleep(2500 * time.Millisecond)
	scheduler.Stop()

	mu.Lock()
	assert.Greater(t, calls, 0)
	mu.Unlock()
}

func TestSchedulerLoadErrors(t *testing.T) {
	scheduler := NewScheduler(testLogger(), types.SchedulerConfig{})
	scheduler.RegisterTask("task", func() error { return nil })

	err := scheduler.LoadPredefinedJobs([]types.ScheduledJob{everySecond("unknown", "missing-task", true)})
	assert.Error(t, err)

	bad := everySecond("bad", "task", true)
	bad.Schedule = "invalid-schedule"
	err = scheduler.LoadPredefinedJobs([]types.ScheduledJob{bad})
	assert.Error(t, err)
}

func TestSchedulerSkipsDisabledJobs(t *testing.T) {
	scheduler := NewScheduler(testLogger(), types.SchedulerConfig{})
	scheduler.RegisterTask("task", func() error { return nil })

	require.NoError(t, scheduler.LoadPredefinedJobs([]types.ScheduledJob{
		everySecond("on", "task", true),
		everySecond("off", "task", false),
	}))

	jobs := scheduler.ListJobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "on", jobs[0].Name)

	enabled, description, err := scheduler.GetJobStatus("on")
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Equal(t, "on description", description)

	_, _, err = scheduler.GetJobStatus("off")
	assert.Error(t, err)
}

func TestSchedulerConcurrencyGuard(t *testing.T) {
	scheduler := NewScheduler(testLogger(), types.SchedulerConfig{MaxConcurrent: 1})

	assert.True(t, scheduler.acquire())
	assert.False(t, scheduler.acquire())
	scheduler.release()
	assert.True(t, scheduler.acquire())
}

func TestSchedulerState(t *testing.T) {
	scheduler := NewScheduler(testLogger(), types.SchedulerConfig{})

	assert.False(t, scheduler.IsRunning())

	require.NoError(t, scheduler.Start())
	assert.True(t, scheduler.IsRunning())
	assert.Error(t, scheduler.Start())

	scheduler.Stop()
	assert.False(t, scheduler.IsRunning())
}
