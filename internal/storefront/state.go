// Package storefront keeps the per-visitor application state: cart, saved
// snapshot, checkout progress and UI flags.
package storefront

import (
	"sync"

	"brewshop/internal/cart"
	"brewshop/internal/checkout"
	"brewshop/internal/snapshot"
	"brewshop/internal/ui"
	"go.uber.org/zap"
)

// State is one visitor's storefront. Access it only through Registry.With.
type State struct {
	mu sync.Mutex

	ID       string
	Cart     *cart.Store
	Snapshot *snapshot.Adapter
	Checkout *checkout.State
	UI       *ui.State

	hydrated bool
	navigate string
}

func newState(id string, storage snapshot.Storage, logger *zap.Logger) *State {
	s := &State{
		ID:       id,
		Cart:     cart.NewStore(logger.With(zap.String("session", id))),
		Snapshot: snapshot.New(storage, id),
		Checkout: checkout.NewState(),
		UI:       &ui.State{},
	}
	s.Cart.OnChange(s.Snapshot.Save)
	s.Checkout.OnErrors(checkout.ModalOnPaymentFailure(s.UI))
	return s
}

// Navigate records where the client should go next.
func (s *State) Navigate(path string) {
	s.navigate = path
}

// TakeNavigation returns the pending navigation target and clears it.
func (s *State) TakeNavigation() string {
	p := s.navigate
	s.navigate = ""
	return p
}

// Session exposes the state to the checkout orchestrator.
func (s *State) Session() checkout.Session {
	return checkout.Session{
		Cart:     s.Cart,
		Snapshot: s.Snapshot,
		Checkout: s.Checkout,
		UI:       s.UI,
		Nav:      s,
	}
}
