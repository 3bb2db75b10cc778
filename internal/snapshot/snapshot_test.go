package snapshot

import (
	"context"
	"errors"
	"testing"

	"brewshop/internal/domain"
	"brewshop/internal/repository/localstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStorage struct{ err error }

func (f failingStorage) Get(context.Context, string, string) (string, error) { return "", f.err }
func (f failingStorage) Set(context.Context, string, string, string) error   { return f.err }
func (f failingStorage) Delete(context.Context, string, string) error        { return f.err }

func sampleCart() domain.Cart {
	entries := []domain.CartEntry{
		{Product: domain.Brew{ID: "b1", Name: "Espresso", PriceCents: 350, Currency: "USD"}, Quantity: 1},
		{Product: domain.Brew{ID: "b2", Name: "Mocha", PriceCents: 425, Currency: "USD"}, Quantity: 2},
	}
	return domain.Cart{Entries: entries, TotalCents: domain.Total(entries)}
}

func TestAdapter_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := New(localstore.NewMemory(), "sess-1")

	require.NoError(t, a.Save(ctx, sampleCart()))

	got, ok, err := a.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleCart(), got)
	assert.Equal(t, int64(1200), got.TotalCents)
}

func TestAdapter_LoadMissing(t *testing.T) {
	a := New(localstore.NewMemory(), "sess-1")

	got, ok, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, got.IsEmpty())
}

func TestAdapter_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	a := New(localstore.NewMemory(), "sess-1")

	require.NoError(t, a.Save(ctx, sampleCart()))
	single := sampleCart()
	single.Entries = single.Entries[:1]
	single.TotalCents = domain.Total(single.Entries)
	require.NoError(t, a.Save(ctx, single))

	got, ok, err := a.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, got.Entries, 1)
	assert.Equal(t, int64(350), got.TotalCents)
}

func TestAdapter_ClearThenLoad(t *testing.T) {
	ctx := context.Background()
	a := New(localstore.NewMemory(), "sess-1")

	require.NoError(t, a.Save(ctx, sampleCart()))
	require.NoError(t, a.Clear(ctx))

	_, ok, err := a.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdapter_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()

	require.NoError(t, New(store, "a").Save(ctx, sampleCart()))

	_, ok, err := New(store, "b").Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdapter_StorageErrorsAreWrapped(t *testing.T) {
	boom := errors.New("disk full")
	a := New(failingStorage{err: boom}, "sess-1")
	ctx := context.Background()

	assert.ErrorIs(t, a.Save(ctx, sampleCart()), boom)
	_, _, err := a.Load(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, a.Clear(ctx), boom)
}

func TestAdapter_CorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	require.NoError(t, store.Set(ctx, "sess-1", Key, "{not json"))

	_, ok, err := New(store, "sess-1").Load(ctx)
	assert.Error(t, err)
	assert.False(t, ok)
}
