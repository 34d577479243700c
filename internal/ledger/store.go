// Package ledger holds the authoritative ledger state and applies commands to
// it. Each command runs as a single transition under the store lock; change
// subscribers receive a copy of the committed state after the lock is released.
package ledger

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/tally/internal/model"
)

// errUnchanged aborts a transition without error or notification.
var errUnchanged = errors.New("unchanged")

// Store is the in-memory source of truth for one ledger.
type Store struct {
	mu    sync.Mutex
	state model.Ledger
	subs  []func(model.Ledger)

	now   func() time.Time
	newID func() string
	log   zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs overrides the id generator.
func WithIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger sets the logger mutations are reported to at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns a store seeded with a copy of initial.
func New(initial model.Ledger, opts ...Option) *Store {
	s := &Store{
		state: initial.Clone(),
		now:   time.Now,
		newID: uuid.NewString,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() model.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// OnChange registers fn to receive the state after every committed change.
func (s *Store) OnChange(fn func(model.Ledger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Replace overwrites the entire state, as when restoring a backup.
func (s *Store) Replace(l model.Ledger) {
	_ = s.mutate("replace", func(st *model.Ledger) error {
		*st = l.Clone()
		return nil
	})
}

// mutate applies fn to a working copy and commits it only if fn succeeds, so
// a failed command leaves no partial change behind.
func (s *Store) mutate(op string, fn func(*model.Ledger) error) error {
	s.mu.Lock()
	next := s.state.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		if errors.Is(err, errUnchanged) {
			return nil
		}
		s.log.Debug().Str("op", op).Err(err).Msg("ledger command rejected")
		return err
	}
	s.state = next
	subs := append([]func(model.Ledger){}, s.subs...)
	s.mu.Unlock()

	s.log.Debug().Str("op", op).Msg("ledger updated")
	for _, sub := range subs {
		sub(next.Clone())
	}
	return nil
}

func (s *Store) dateOrNow(d time.Time) time.Time {
	if d.IsZero() {
		return s.now()
	}
	return d
}
