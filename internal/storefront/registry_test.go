package storefront

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"brewshop/internal/cart"
	"brewshop/internal/domain"
	"brewshop/internal/repository/localstore"
	"brewshop/internal/snapshot"
	"brewshop/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cortado = domain.Brew{ID: "b1", Name: "Cortado", PriceCents: 380, Currency: "USD"}

type brokenStorage struct{}

func (brokenStorage) Get(context.Context, string, string) (string, error) {
	return "", errors.New("storage offline")
}
func (brokenStorage) Set(context.Context, string, string, string) error { return nil }
func (brokenStorage) Delete(context.Context, string, string) error      { return nil }

func TestRegistry_FirstAccessHydratesFromSnapshot(t *testing.T) {
	ctx := context.Background()
	storage := localstore.NewMemory()
	entries := []domain.CartEntry{{Product: cortado, Quantity: 2}}
	require.NoError(t, snapshot.New(storage, "sess-1").Save(ctx, domain.Cart{Entries: entries}))

	r := NewRegistry(storage, time.Minute, nil)
	err := r.With(ctx, "sess-1", func(s *State) error {
		got := s.Cart.Snapshot()
		assert.Len(t, got.Entries, 1)
		assert.Equal(t, int64(760), got.TotalCents)
		return nil
	})
	require.NoError(t, err)
}

func TestRegistry_NoSnapshotStartsEmpty(t *testing.T) {
	r := NewRegistry(localstore.NewMemory(), time.Minute, nil)
	err := r.With(context.Background(), "fresh", func(s *State) error {
		assert.True(t, s.Cart.Snapshot().IsEmpty())
		return nil
	})
	require.NoError(t, err)
}

func TestRegistry_AddPersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	storage := localstore.NewMemory()
	r := NewRegistry(storage, time.Minute, nil)

	require.NoError(t, r.With(ctx, "sess-1", func(s *State) error {
		s.Cart.Dispatch(ctx, cart.AddToCart(cortado, 1))
		return nil
	}))

	saved, ok, err := snapshot.New(storage, "sess-1").Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Cortado", saved.Entries[0].Product.Name)
}

func TestRegistry_HydrateErrorIsReturnedAndRetried(t *testing.T) {
	r := NewRegistry(brokenStorage{}, time.Minute, nil)
	called := false
	err := r.With(context.Background(), "sess", func(*State) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SweepEvictsIdleAndRehydrates(t *testing.T) {
	ctx := context.Background()
	storage := localstore.NewMemory()
	r := NewRegistry(storage, time.Minute, nil)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	require.NoError(t, r.With(ctx, "idle", func(s *State) error {
		s.Cart.Dispatch(ctx, cart.AddToCart(cortado, 1))
		s.UI.DispatchToast(ui.SetToast("hello"))
		return nil
	}))
	now = now.Add(30 * time.Second)
	require.NoError(t, r.With(ctx, "active", func(*State) error { return nil }))

	now = now.Add(45 * time.Second)
	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())

	require.NoError(t, r.With(ctx, "idle", func(s *State) error {
		assert.True(t, s.Cart.Contains("Cortado"), "cart must come back from the snapshot")
		assert.False(t, s.UI.Toast.Open, "ui state is not persisted")
		return nil
	}))
}

func TestRegistry_SweepDisabledWithoutTimeout(t *testing.T) {
	r := NewRegistry(localstore.NewMemory(), 0, nil)
	require.NoError(t, r.With(context.Background(), "a", func(*State) error { return nil }))
	assert.Zero(t, r.Sweep())
}

func TestRegistry_SerializesSameSession(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(localstore.NewMemory(), time.Minute, nil)

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.With(ctx, "shared", func(*State) error {
				v := counter
				time.Sleep(time.Microsecond)
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestState_NavigationIsTakenOnce(t *testing.T) {
	r := NewRegistry(localstore.NewMemory(), time.Minute, nil)
	require.NoError(t, r.With(context.Background(), "s", func(s *State) error {
		s.Session().Nav.Navigate("/cart")
		assert.Equal(t, "/cart", s.TakeNavigation())
		assert.Empty(t, s.TakeNavigation())
		return nil
	}))
}

func TestState_PaymentFailureOpensModal(t *testing.T) {
	r := NewRegistry(localstore.NewMemory(), time.Minute, nil)
	require.NoError(t, r.With(context.Background(), "s", func(s *State) error {
		s.Checkout.DispatchErrors(ui.PaymentFailed(ui.PaymentFailedKey, "declined"))
		assert.Equal(t, ui.ModalState{Open: true, Message: "declined"}, s.UI.Modal)
		return nil
	}))
}
