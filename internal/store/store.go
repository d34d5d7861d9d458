// Package store holds the live in-memory aggregate for one signed-in
// session. Every mutation in the system goes through Patch; each patch is
// merged, derived, and announced synchronously, then written through to the
// persistence adapter by a background writer that keeps only the latest
// snapshot (last write wins).
package store

import (
	"context"
	"sync"
	"time"

	"github.com/chayilhub/chayil/internal/derive"
	"github.com/chayilhub/chayil/internal/domain"
	"github.com/chayilhub/chayil/internal/persist"
)

// Listener receives a snapshot after every applied patch.
type Listener func(domain.PlannerState)

type pendingSave struct {
	snapshot domain.PlannerState
	gen      uint64
}

// Store owns the aggregate for the duration of a session.
type Store struct {
	adapter  persist.Adapter
	userID   string
	observer Observer

	mu          sync.Mutex
	state       domain.PlannerState
	initialized bool
	patched     bool
	subs        map[int]Listener
	nextSub     int
	closed      bool

	saveCh   chan pendingSave
	done     chan struct{}
	enqueued uint64

	flushMu  sync.Mutex
	flushed  uint64
	flushCnd *sync.Cond
}

// Option configures a Store.
type Option func(*Store)

// WithObserver attaches telemetry for patch and save events.
func WithObserver(obs Observer) Option {
	return func(s *Store) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// New creates a Store bound to one user's storage slot and starts its
// persistence writer.
func New(adapter persist.Adapter, userID string, opts ...Option) *Store {
	s := &Store{
		adapter:  adapter,
		userID:   userID,
		observer: NoopObserver{},
		subs:     make(map[int]Listener),
		saveCh:   make(chan pendingSave, 1),
		done:     make(chan struct{}),
	}
	s.flushCnd = sync.NewCond(&s.flushMu)
	for _, opt := range opts {
		opt(s)
	}
	go s.writeLoop()
	return s
}

// Initialize installs the seed aggregate. The load-vs-first-patch rule: a
// completed load wins only if it arrives before the first patch; once a
// patch has landed the current (seeded, user-mutated) state wins and the
// call is a no-op. Returns whether the seed was applied.
func (s *Store) Initialize(seed domain.PlannerState) bool {
	s.mu.Lock()
	if s.patched {
		s.mu.Unlock()
		return false
	}
	s.state = seed.Clone()
	s.initialized = true
	s.mu.Unlock()
	return true
}

// Current returns a snapshot of the aggregate.
func (s *Store) Current() domain.PlannerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers a listener and returns its unsubscribe function.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Patch is the single mutation entry point. It shallow-merges the given
// partial update, re-runs task extraction when the daily planning text
// changed, notifies subscribers, and enqueues a full-state write — all
// before returning. Two sequential calls apply in that exact order.
func (s *Store) Patch(p Patch) domain.PlannerState {
	start := time.Now()

	s.mu.Lock()
	prevDiario := s.state.Planning.Diario
	fields := p.apply(&s.state)
	s.patched = len(fields) > 0 || s.patched
	s.initialized = true

	extracted := 0
	if s.state.Planning.Diario != prevDiario {
		added := derive.SyncTasks(s.state.Tasks, s.state.Planning.Diario)
		if len(added) > 0 {
			s.state.Tasks = append(s.state.Tasks, added...)
			extracted = len(added)
		}
	}

	snapshot := s.state.Clone()
	listeners := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	// Enqueue while holding the lock so snapshot order always matches
	// patch order; the send never blocks.
	if !s.closed {
		s.enqueued++
		s.enqueueSave(pendingSave{snapshot: snapshot, gen: s.enqueued})
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}

	s.observer.OnPatch(PatchEvent{
		UserID:         s.userID,
		Fields:         fields,
		ExtractedTasks: extracted,
		Duration:       time.Since(start),
	})
	return snapshot
}

// Reset discards the in-memory aggregate on sign-out. Persisted storage is
// left untouched.
func (s *Store) Reset() {
	s.mu.Lock()
	s.state = domain.PlannerState{}
	s.initialized = false
	s.patched = false
	s.mu.Unlock()
}

// Flush blocks until every write enqueued before the call has been handed
// to the adapter.
func (s *Store) Flush() {
	s.mu.Lock()
	target := s.enqueued
	s.mu.Unlock()

	s.flushMu.Lock()
	for s.flushed < target {
		s.flushCnd.Wait()
	}
	s.flushMu.Unlock()
}

// Close flushes pending writes and stops the persistence writer. The store
// must not be patched after Close.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.saveCh)
	<-s.done
}

// enqueueSave keeps at most one pending snapshot: a newer snapshot replaces
// an unsaved older one, so the adapter always receives the latest aggregate.
func (s *Store) enqueueSave(p pendingSave) {
	for {
		select {
		case s.saveCh <- p:
			return
		default:
		}
		select {
		case stale, ok := <-s.saveCh:
			if !ok {
				return
			}
			// The dropped snapshot is covered by the newer one.
			s.markFlushed(stale.gen)
		default:
		}
	}
}

func (s *Store) writeLoop() {
	defer close(s.done)
	for p := range s.saveCh {
		start := time.Now()
		err := s.adapter.Save(context.Background(), s.userID, p.snapshot)
		// Save failures are swallowed: the in-memory aggregate stays
		// authoritative for the session.
		s.observer.OnSave(SaveEvent{
			UserID:   s.userID,
			Err:      err,
			Duration: time.Since(start),
		})
		s.markFlushed(p.gen)
	}
}

func (s *Store) markFlushed(gen uint64) {
	s.flushMu.Lock()
	if gen > s.flushed {
		s.flushed = gen
	}
	s.flushCnd.Broadcast()
	s.flushMu.Unlock()
}
