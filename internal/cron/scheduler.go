package cron

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/0xPuncker/job-grid/pkg/types"
	"github.com/0xPuncker/job-grid/pkg/utils"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type entry struct {
	id  cron.EntryID
	job types.ScheduledJob
}

// Scheduler runs registered tasks on cron schedules. A run is skipped when
// maxConcurrent runs are already in flight.
type Scheduler struct {
	cron          *cron.Cron
	logger        *logrus.Logger
	mu            sync.RWMutex
	entries       map[string]entry
	tasks         map[string]func() error
	started       bool
	maxConcurrent int
	active        int
	activeMu      sync.Mutex
}

func NewScheduler(logger *logrus.Logger, config types.SchedulerConfig) *Scheduler {
	maxConcurrent := config.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Scheduler{
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger,
		entries:       make(map[string]entry),
		tasks:         make(map[string]func() error),
		maxConcurrent: maxConcurrent,
	}
}

func (s *Scheduler) RegisterTask(name string, task func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[name] = task
}

// LoadPredefinedJobs replaces every scheduled job with the enabled ones in jobs.
func (s *Scheduler) LoadPredefinedJobs(jobs []types.ScheduledJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, e := range s.entries {
		s.cron.Remove(e.id)
		delete(s.entries, name)
	}

	for _, job := range jobs {
		if !job.Enabled {
			s.logger.Infof("Skipping disabled job: %s", job.Name)
			continue
		}

		task, exists := s.tasks[job.TaskName]
		if !exists {
			return fmt.Errorf("task %s not registered", job.TaskName)
		}

		id, err := s.cron.AddFunc(job.Schedule, s.wrap(job, task))
		if err != nil {
			return fmt.Errorf("failed to schedule job %s: %w", job.Name, err)
		}
		s.entries[job.Name] = entry{id: id, job: job}

		s.logger.WithFields(logrus.Fields{
			"job_name": job.Name,
			"schedule": job.Schedule,
			"task":     job.TaskName,
		}).Info("Job scheduled successfully")
	}

	return nil
}

func (s *Scheduler) wrap(job types.ScheduledJob, task func() error) func() {
	return func() {
		if !s.acquire() {
			s.logger.Warnf("Max concurrent jobs reached, skipping job: %s", job.Name)
			return
		}
		defer s.release()

		start := time.Now()
		if err := task(); err != nil {
			s.logger.WithFields(logrus.Fields{
				"job_name": job.Name,
				"error":    err.Error(),
				"duration": utils.FormatDuration(time.Since(start)),
			}).Error("Job execution failed")
			return
		}

		s.logger.WithFields(logrus.Fields{
			"job_name": job.Name,
			"duration": utils.FormatDuration(time.Since(start)),
		}).Info("Job execution completed successfully")
	}
}

func (s *Scheduler) acquire() bool {
	s.activeMu.Lock()
	defer s.activeMu.Unlock()
	if s.active >= s.maxConcurrent {
		return false
	}
	s.active++
	return true
}

func (s *Scheduler) release() {
	s.activeMu.Lock()
	s.active--
	s.activeMu.Unlock()
}

func (s *Scheduler) GetJobStatus(name string) (bool, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[name]
	if !exists {
		return false, "", fmt.Errorf("job %s not found", name)
	}

	return e.job.Enabled, e.job.Description, nil
}

// ListJobs returns the scheduled jobs sorted by name.
func (s *Scheduler) ListJobs() []types.ScheduledJob {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]types.ScheduledJob, 0, len(s.entries))
	for _, e := range s.entries {
		jobs = append(jobs, e.job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Name < jobs[j].Name })

	return jobs
}

func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("scheduler already started")
	}

	s.cron.Start()
	s.started = true
	s.logger.Info("Scheduler started...")

	return nil
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.started = false
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}
