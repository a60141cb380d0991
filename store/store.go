package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"

	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store/cache"
)

// Store is the data access facade. It owns one driver, a mirror cache of
// the last successfully fetched collections, and the shared loading/error
// status every page reads.
type Store struct {
	profile *profile.Profile
	driver  Driver

	// listCache mirrors the last successful list per resource so a
	// failed refresh leaves the previous collection observable.
	listCache *cache.Cache

	// inflight counts pending operations across all resources. The
	// shared loading flag is coarse: it stays up until every
	// overlapping operation has completed.
	inflight atomic.Int64

	mu      sync.RWMutex
	lastErr string
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		driver:  driver,
		profile: profile,
		listCache: cache.New(cache.Config{
			DefaultTTL:      10 * time.Minute,
			CleanupInterval: 5 * time.Minute,
			MaxItems:        64,
		}),
	}
}

func (s *Store) Close() error {
	s.listCache.Close()
	return s.driver.Close()
}

// Loading reports whether any store operation is in flight.
func (s *Store) Loading() bool {
	return s.inflight.Load() > 0
}

// LastError returns the last failure's message, or "" after any
// successful operation.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// track marks an operation as in flight. The returned func must be
// called exactly once with the operation's outcome: a failure fills the
// shared error slot, a success clears it.
func (s *Store) track() func(error) {
	s.inflight.Add(1)
	return func(err error) {
		s.inflight.Add(-1)
		s.mu.Lock()
		if err != nil {
			s.lastErr = err.Error()
		} else {
			s.lastErr = ""
		}
		s.mu.Unlock()
	}
}

// RefreshAll re-fetches every collection, warming the mirror cache.
// Used on startup and by the retry affordance after a transport error.
func (s *Store) RefreshAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { _, err := s.ListNotes(ctx, &FindNote{}); return err })
	g.Go(func() error { _, err := s.ListMemories(ctx, &FindMemory{}); return err })
	g.Go(func() error { _, err := s.ListTimelineEvents(ctx, &FindTimelineEvent{}); return err })
	g.Go(func() error { _, err := s.ListCountdownEvents(ctx, &FindCountdownEvent{}); return err })
	g.Go(func() error { _, err := s.ListCompliments(ctx, &FindCompliment{}); return err })
	g.Go(func() error { _, err := s.ListQuizQuestions(ctx, &FindQuizQuestion{}); return err })
	return g.Wait()
}

// NewUID generates an opaque record identifier. Drivers assign one when
// a create request arrives without an id.
func NewUID() string {
	return shortuuid.New()
}

// Paginate applies the optional limit/offset of a find request.
func Paginate[T any](list []T, limit, offset *int) []T {
	if offset != nil {
		if *offset >= len(list) {
			return nil
		}
		list = list[*offset:]
	}
	if limit != nil && *limit < len(list) {
		list = list[:*limit]
	}
	return list
}
