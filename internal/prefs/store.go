package prefs

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Backend is the client-local storage behind a Store. Load reports found=false
// when nothing has been stored for key yet.
type Backend interface {
	Load(ctx context.Context, key Key) (value string, found bool, err error)
	Save(ctx context.Context, key Key, value string) error
}

// Store owns the current Snapshot. Writes go to the backend before the
// in-memory snapshot changes, so both always agree.
type Store struct {
	mu      sync.Mutex
	backend Backend
	current Snapshot
	subs    map[int]func(Snapshot)
	nextSub int
	log     *zap.Logger
}

// Open loads both preferences from backend on top of defaults. Stored values
// that are no longer valid are replaced by the default and written back.
func Open(ctx context.Context, backend Backend, defaults Snapshot, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	defaults = defaults.With(KeyLanguage, string(defaults.Language)).With(KeyTheme, string(defaults.Theme))

	s := &Store{
		backend: backend,
		current: defaults,
		subs:    map[int]func(Snapshot){},
		log:     log,
	}
	for _, key := range Keys {
		raw, found, err := backend.Load(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("load preference %s: %w", key, err)
		}
		if !found {
			continue
		}
		s.current = s.current.With(key, raw)
		if normalized := s.current.Get(key); normalized != raw {
			log.Warn("stored preference not recognised, using default",
				zap.String("key", string(key)),
				zap.String("stored", raw),
				zap.String("value", normalized),
			)
			if err := backend.Save(ctx, key, normalized); err != nil {
				return nil, fmt.Errorf("rewrite preference %s: %w", key, err)
			}
		}
	}
	return s, nil
}

// Snapshot returns the current preferences.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Get returns the current value of key, or "" for an unknown key.
func (s *Store) Get(key Key) string {
	return s.Snapshot().Get(key)
}

// Toggle flips key between its two values, persists the new value and then
// publishes the new snapshot to subscribers. When the write fails the
// in-memory value is left untouched.
func (s *Store) Toggle(ctx context.Context, key Key) (Snapshot, error) {
	s.mu.Lock()
	next, err := s.current.Toggled(key)
	if err != nil {
		s.mu.Unlock()
		return s.Snapshot(), err
	}
	if err := s.backend.Save(ctx, key, next.Get(key)); err != nil {
		prev := s.current
		s.mu.Unlock()
		s.log.Error("persist preference", zap.String("key", string(key)), zap.Error(err))
		return prev, fmt.Errorf("save preference %s: %w", key, err)
	}
	s.current = next
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	s.log.Debug("preference toggled", zap.String("key", string(key)), zap.String("value", next.Get(key)))
	for _, fn := range subs {
		fn(next)
	}
	return next, nil
}

// Subscribe registers fn to be called with every new snapshot. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
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
