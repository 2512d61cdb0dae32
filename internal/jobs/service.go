package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/0xPuncker/job-grid/internal/grid"
	"github.com/0xPuncker/job-grid/pkg/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Duration is how long a generated grid is served before it is rebuilt.
const Duration = time.Hour

const refreshKey = "refresh"

// Fetcher returns the deduplicated base list scraped from the job boards.
type Fetcher interface {
	Fetch(ctx context.Context) []types.JobRecord
}

type Status struct {
	CachedJobs int
	LastUpdate time.Time
}

type Service struct {
	fetcher  Fetcher
	store    *Store
	fallback []types.JobRecord
	logger   *logrus.Logger
	group    singleflight.Group
}

func NewService(fetcher Fetcher, store *Store, fallback []types.JobRecord, logger *logrus.Logger) *Service {
	if len(fallback) == 0 {
		fallback = DefaultFallback()
	}
	return &Service{
		fetcher:  fetcher,
		store:    store,
		fallback: fallback,
		logger:   logger,
	}
}

// Jobs returns the cached grid, rebuilding it first when it has expired.
// Concurrent callers that find the cache stale share a single rebuild.
func (s *Service) Jobs(ctx context.Context) []types.JobRecord {
	if snap, ok := s.store.Fresh(); ok {
		return snap.Jobs
	}

	// The rebuild outlives a disconnecting client.
	ctx = context.WithoutCancel(ctx)
	v, _, _ := s.group.Do(refreshKey, func() (interface{}, error) {
		if snap, ok := s.store.Fresh(); ok {
			return snap.Jobs, nil
		}
		return s.refresh(ctx), nil
	})

	return v.([]types.JobRecord)
}

// Warm rebuilds the grid if it is stale. Used as a scheduler task.
func (s *Service) Warm() error {
	jobs := s.Jobs(context.Background())
	s.logger.WithField("cached_jobs", len(jobs)).Debug("Grid warm-up finished")
	return nil
}

func (s *Service) Status() Status {
	snap, _ := s.store.Last()
	return Status{
		CachedJobs: len(snap.Jobs),
		LastUpdate: snap.RefreshedAt,
	}
}

func (s *Service) refresh(ctx context.Context) (jobs []types.JobRecord) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WithField("panic", r).Error("Grid refresh panicked, serving fallback jobs")
			jobs = s.fallbackGrid()
		}
	}()

	start := time.Now()
	s.logger.Info("Fetching fresh jobs...")

	jobs, err := s.rebuild(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Grid refresh failed, serving fallback jobs")
		return s.fallbackGrid()
	}

	s.logger.WithFields(logrus.Fields{
		"cached_jobs": len(jobs),
		"duration":    time.Since(start).String(),
	}).Info("Grid refreshed")

	return jobs
}

func (s *Service) rebuild(ctx context.Context) ([]types.JobRecord, error) {
	base := s.fetcher.Fetch(ctx)
	if len(base) == 0 {
		s.logger.Info("No jobs scraped, using fallback jobs")
		base = s.fallback
	}

	jobs, err := grid.Generate(base, grid.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate grid: %w", err)
	}

	s.store.Put(jobs, time.Now())
	return jobs, nil
}

// fallbackGrid builds the grid from the static list. It is stored for the
// status report but not marked fresh.
func (s *Service) fallbackGrid() []types.JobRecord {
	jobs, err := grid.Generate(s.fallback, grid.Size)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate fallback grid")
		return []types.JobRecord{}
	}

	s.store.Replace(jobs)
	return jobs
}
