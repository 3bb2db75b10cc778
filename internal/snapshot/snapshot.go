// Package snapshot mirrors a visitor's cart into durable local storage so it
// survives process restarts and idle eviction.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"brewshop/internal/domain"
)

// Key is the fixed storage key the cart is saved under.
const Key = "cart"

// Storage is the subset of the localstore repository the adapter needs.
type Storage interface {
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key, value string) error
	Delete(ctx context.Context, namespace, key string) error
}

// Adapter reads and writes one namespace's cart snapshot.
type Adapter struct {
	store     Storage
	namespace string
}

func New(store Storage, namespace string) *Adapter {
	return &Adapter{store: store, namespace: namespace}
}

// Save overwrites the stored snapshot with the cart's entries.
func (a *Adapter) Save(ctx context.Context, cart domain.Cart) error {
	entries := cart.Entries
	if entries == nil {
		entries = []domain.CartEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := a.store.Set(ctx, a.namespace, Key, string(raw)); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

// Load returns the stored cart. ok is false when nothing was saved.
func (a *Adapter) Load(ctx context.Context) (domain.Cart, bool, error) {
	raw, err := a.store.Get(ctx, a.namespace, Key)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Cart{}, false, nil
	}
	if err != nil {
		return domain.Cart{}, false, fmt.Errorf("load cart snapshot: %w", err)
	}

	var entries []domain.CartEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return domain.Cart{}, false, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return domain.Cart{Entries: entries, TotalCents: domain.Total(entries)}, true, nil
}

func (a *Adapter) Clear(ctx context.Context) error {
	if err := a.store.Delete(ctx, a.namespace, Key); err != nil {
		return fmt.Errorf("clear cart snapshot: %w", err)
	}
	return nil
}
