package storefront

import (
	"context"
	"fmt"
	"sync"
	"time"

	"brewshop/internal/cart"
	"brewshop/internal/snapshot"
	"go.uber.org/zap"
)

type entry struct {
	state    *State
	lastSeen time.Time
}

// Registry owns the live visitor states. States are created on first access,
// hydrated from their snapshot and evicted after sitting idle.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry

	storage snapshot.Storage
	idle    time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

func NewRegistry(storage snapshot.Storage, idle time.Duration, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		entries: make(map[string]*entry),
		storage: storage,
		idle:    idle,
		logger:  logger,
		now:     time.Now,
	}
}

// With runs fn while holding the visitor's lock. Calls for the same id are
// serialized; different ids run in parallel.
func (r *Registry) With(ctx context.Context, id string, fn func(*State) error) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		e = &entry{state: newState(id, r.storage, r.logger)}
		r.entries[id] = e
	}
	e.lastSeen = r.now()
	st := e.state
	r.mu.Unlock()

	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.hydrated {
		if err := r.hydrate(ctx, st); err != nil {
			return err
		}
	}
	return fn(st)
}

// hydrate seeds the cart from its snapshot, the server-side equivalent of a
// page mount.
func (r *Registry) hydrate(ctx context.Context, st *State) error {
	saved, ok, err := st.Snapshot.Load(ctx)
	if err != nil {
		return fmt.Errorf("hydrate session %s: %w", st.ID, err)
	}
	if ok {
		st.Cart.Dispatch(ctx, cart.ImportCart(saved))
		r.logger.Debug("session hydrated from snapshot",
			zap.String("session", st.ID),
			zap.Int("items", len(saved.Entries)),
		)
	}
	st.hydrated = true
	return nil
}

// Sweep evicts states idle for longer than the configured timeout and returns
// how many were dropped. Busy states are skipped.
func (r *Registry) Sweep() int {
	if r.idle <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.idle)

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, e := range r.entries {
		if e.lastSeen.After(cutoff) {
			continue
		}
		if !e.state.mu.TryLock() {
			continue
		}
		delete(r.entries, id)
		e.state.mu.Unlock()
		evicted++
	}
	return evicted
}

// Run sweeps on every tick until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Info("evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
