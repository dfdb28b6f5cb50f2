package state_test

import (
	"context"
	"path/filepath"
	"testing"

	"mitrasafety/storefront/internal/domain"
	"mitrasafety/storefront/internal/state"
	"mitrasafety/storefront/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openState(t *testing.T, path, key string) *state.SQLiteCartState {
	t.Helper()
	s, err := state.OpenSQLiteCartState(context.Background(), path, key)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteCartStateEmptyWhenNothingSaved(t *testing.T) {
	s := openState(t, filepath.Join(t.TempDir(), "cart.db"), "")

	items, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSQLiteCartStateSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := openState(t, filepath.Join(t.TempDir(), "nested", "cart.db"), state.DefaultCartKey)

	items := []domain.LineItem{
		{ID: "cart-a", ProductID: "p1", Name: "Sarung Tangan", Price: 45000, Quantity: 3, ImageURL: "/img/gloves.png"},
		{ID: "cart-b", ProductID: "p2", Name: "Helm", Price: 125000, Quantity: 1, ImageURL: "/img/helm.png"},
	}
	require.NoError(t, s.Save(ctx, items))
	require.NoError(t, s.Save(ctx, items[:1]))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, items[:1], got)
}

func TestSQLiteCartStateKeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cart.db")
	a := openState(t, path, "cart-a")
	require.NoError(t, a.Save(ctx, []domain.LineItem{{ID: "x", ProductID: "p1", Quantity: 1}}))
	require.NoError(t, a.Close())

	b := openState(t, path, "cart-b")
	items, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPersistentCartSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cart.db")

	first := openState(t, path, state.DefaultCartKey)
	cart := store.OpenPersistentCart(ctx, first, domain.DefaultPricing())
	cart.AddItem(domain.ProductSnapshot{ID: "p1", Name: "Sarung Tangan", Price: 45000, ImageURL: "/img/gloves.png"}, 1)
	cart.AddItem(domain.ProductSnapshot{ID: "p1", Name: "Sarung Tangan", Price: 45000, ImageURL: "/img/gloves.png"}, 2)
	cart.AddItem(domain.ProductSnapshot{ID: "p2", Name: "Helm", Price: 125000, ImageURL: "/img/helm.png"}, 1)
	before := cart.Items()
	require.NoError(t, first.Close())

	second := openState(t, path, state.DefaultCartKey)
	reloaded := store.OpenPersistentCart(ctx, second, domain.DefaultPricing())

	assert.Equal(t, before, reloaded.Items())
	assert.Equal(t, int64(260000), reloaded.Subtotal())
	assert.Equal(t, int64(25000), reloaded.Shipping())
	assert.Equal(t, int64(285000), reloaded.Total())
}
