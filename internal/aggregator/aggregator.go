package aggregator

import (
	"context"
	"time"

	"github.com/0xPuncker/job-grid/pkg/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Source is a job board that never fails: errors come back as an empty slice.
type Source interface {
	Name() string
	Scrape(ctx context.Context) []types.JobRecord
}

type Aggregator struct {
	sources []Source
	logger  *logrus.Logger
}

func New(logger *logrus.Logger, sources ...Source) *Aggregator {
	return &Aggregator{
		sources: sources,
		logger:  logger,
	}
}

// Fetch scrapes every source concurrently and returns the merged, deduplicated
// records in registration order.
func (a *Aggregator) Fetch(ctx context.Context) []types.JobRecord {
	start := time.Now()
	results := make([][]types.JobRecord, len(a.sources))

	var g errgroup.Group
	for i, src := range a.sources {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					a.logger.WithFields(logrus.Fields{
						"source": src.Name(),
						"panic":  r,
					}).Error("Source scrape panicked, skipping it")
					results[i] = []types.JobRecord{}
				}
			}()
			results[i] = src.Scrape(ctx)
			return nil
		})
	}
	_ = g.Wait()

	var all []types.JobRecord
	for _, res := range results {
		all = append(all, res...)
	}
	unique := Dedupe(all)

	a.logger.WithFields(logrus.Fields{
		"sources":  len(a.sources),
		"scraped":  len(all),
		"unique":   len(unique),
		"duration": time.Since(start).String(),
	}).Info("Aggregated job boards")

	return unique
}

// Dedupe drops records whose lower-cased title was already seen. The first
// occurrence is kept.
func Dedupe(jobs []types.JobRecord) []types.JobRecord {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(jobs))
	out := make([]types.JobRecord, 0, len(jobs))

	for _, job := range jobs {
		key := lower.String(job.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, job)
	}

	return out
}
