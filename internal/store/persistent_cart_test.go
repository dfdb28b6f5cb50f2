package store

import (
	"context"
	"errors"
	"testing"

	"mitrasafety/storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryPersister struct {
	items   []domain.LineItem
	saves   int
	loadErr error
	saveErr error
}

func (m *memoryPersister) Load(context.Context) ([]domain.LineItem, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]domain.LineItem{}, m.items...), nil
}

func (m *memoryPersister) Save(_ context.Context, items []domain.LineItem) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items = append([]domain.LineItem{}, items...)
	return nil
}

func TestPersistentCartSavesEveryMutation(t *testing.T) {
	p := &memoryPersister{}
	cart := OpenPersistentCart(context.Background(), p, domain.DefaultPricing(), sequentialIDs())

	cart.AddItem(gloves(), 1)
	cart.AddItem(domain.ProductSnapshot{ID: "p2", Price: 600000}, 1)
	cart.UpdateQuantity("p1", 4)
	cart.RemoveItem("p2")

	assert.Equal(t, 4, p.saves)
	require.Len(t, p.items, 1)
	assert.Equal(t, 4, p.items[0].Quantity)

	cart.OpenCart()
	cart.CloseCart()
	assert.Equal(t, 4, p.saves)

	cart.ClearCart()
	assert.Equal(t, 5, p.saves)
	assert.Empty(t, p.items)
}

func TestPersistentCartRoundTrip(t *testing.T) {
	p := &memoryPersister{}
	first := OpenPersistentCart(context.Background(), p, domain.DefaultPricing(), sequentialIDs())
	first.AddItem(gloves(), 2)
	first.AddItem(domain.ProductSnapshot{ID: "p2", Name: "Sepatu", Price: 650000, ImageURL: "/img/boots.png"}, 1)

	second := OpenPersistentCart(context.Background(), p, domain.DefaultPricing())

	assert.Equal(t, first.Items(), second.Items())
	assert.Equal(t, first.Totals(), second.Totals())
}

func TestPersistentCartStartsEmptyWithoutState(t *testing.T) {
	cart := OpenPersistentCart(context.Background(), &memoryPersister{}, domain.DefaultPricing())
	assert.Empty(t, cart.Items())
	assert.False(t, cart.IsOpen())
}

func TestPersistentCartStartsEmptyOnLoadError(t *testing.T) {
	p := &memoryPersister{loadErr: errors.New("corrupt")}
	cart := OpenPersistentCart(context.Background(), p, domain.DefaultPricing())
	assert.Empty(t, cart.Items())
}

func TestPersistentCartKeepsMemoryStateWhenSaveFails(t *testing.T) {
	p := &memoryPersister{saveErr: errors.New("disk full")}
	cart := OpenPersistentCart(context.Background(), p, domain.DefaultPricing())

	cart.AddItem(gloves(), 3)

	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, 1, p.saves)
}
