package jobs

import (
	"time"

	"github.com/0xPuncker/job-grid/pkg/types"
	"github.com/patrickmn/go-cache"
)

const (
	currentKey = "grid"
	lastKey    = "grid:last"
)

// Snapshot is one generated grid together with the time it was refreshed.
type Snapshot struct {
	Jobs        []types.JobRecord
	RefreshedAt time.Time
}

// Store keeps the generated grid. The current entry expires after the cache
// duration; the last entry never does and backs the status report.
type Store struct {
	cache *cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		cache: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Fresh returns the current grid while less than ttl has elapsed since its
// refresh. go-cache still returns an item at exactly its expiration instant,
// so elapsed == ttl is rejected here.
func (s *Store) Fresh() (Snapshot, bool) {
	cached, found := s.cache.Get(currentKey)
	if !found {
		return Snapshot{}, false
	}
	snap := cached.(Snapshot)
	if s.now().Sub(snap.RefreshedAt) >= s.ttl {
		return Snapshot{}, false
	}
	return snap, true
}

// Last returns the most recently stored grid, expired or not.
func (s *Store) Last() (Snapshot, bool) {
	cached, found := s.cache.Get(lastKey)
	if !found {
		return Snapshot{}, false
	}
	return cached.(Snapshot), true
}

// Put replaces the grid and marks it fresh as of refreshedAt.
func (s *Store) Put(jobs []types.JobRecord, refreshedAt time.Time) Snapshot {
	snap := Snapshot{Jobs: jobs, RefreshedAt: refreshedAt}
	s.cache.Set(currentKey, snap, cache.DefaultExpiration)
	s.cache.Set(lastKey, snap, cache.NoExpiration)
	return snap
}

// Replace swaps the stored grid without touching its refresh time, so the
// next lookup is still a miss.
func (s *Store) Replace(jobs []types.JobRecord) Snapshot {
	prev, _ := s.Last()
	snap := Snapshot{Jobs: jobs, RefreshedAt: prev.RefreshedAt}
	s.cache.Set(lastKey, snap, cache.NoExpiration)
	return snap
}
