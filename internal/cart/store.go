package cart

import (
	"context"

	"brewshop/internal/domain"
	"go.uber.org/zap"
)

// ChangeHook observes the cart after a dispatch changed it.
type ChangeHook func(ctx context.Context, cart domain.Cart) error

// Store owns one visitor's cart. It is not safe for concurrent use; callers
// serialize access per session.
type Store struct {
	state    domain.Cart
	onChange ChangeHook
	logger   *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// OnChange installs the hook run after every state-changing dispatch that
// leaves the cart non-empty.
func (s *Store) OnChange(h ChangeHook) {
	s.onChange = h
}

// Dispatch reduces a into the store and returns a copy of the new state.
// Hook failures are logged; the in-memory state is kept either way.
func (s *Store) Dispatch(ctx context.Context, a Action) domain.Cart {
	next, changed := reduce(s.state, a)
	s.state = next
	if changed && s.onChange != nil && !next.IsEmpty() {
		if err := s.onChange(ctx, next.Clone()); err != nil {
			s.logger.Warn("cart change hook failed", zap.String("action", a.Type), zap.Error(err))
		}
	}
	return next.Clone()
}

func (s *Store) Snapshot() domain.Cart {
	return s.state.Clone()
}

// Contains reports whether a product with this name is already in the cart.
func (s *Store) Contains(name string) bool {
	_, ok := s.state.Find(name)
	return ok
}
