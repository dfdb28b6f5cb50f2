package store

import (
	"context"
	"time"

	"mitrasafety/storefront/internal/domain"

	log "github.com/sirupsen/logrus"
)

const defaultSaveTimeout = 5 * time.Second

// Persister stores the cart's line items. Load returns an empty slice and a
// nil error when nothing has been saved yet.
type Persister interface {
	Load(ctx context.Context) ([]domain.LineItem, error)
	Save(ctx context.Context, items []domain.LineItem) error
}

// PersistentCart is a Cart whose mutating operations save the line items
// through a Persister before returning. Saves are best effort: a failed save
// is logged and the in-memory cart stays authoritative.
type PersistentCart struct {
	*Cart
	persister   Persister
	saveTimeout time.Duration
}

// OpenPersistentCart hydrates a cart from the persister. When the stored
// state cannot be read the cart starts empty.
func OpenPersistentCart(ctx context.Context, persister Persister, pricing domain.Pricing, opts ...CartOption) *PersistentCart {
	items, err := persister.Load(ctx)
	if err != nil {
		log.Errorf("❌ Failed to load saved cart, starting empty: %v", err)
		items = nil
	}

	if len(items) > 0 {
		log.Infof("🛒 Restored cart with %d line items", len(items))
	}

	return &PersistentCart{
		Cart:        NewCart(pricing, items, opts...),
		persister:   persister,
		saveTimeout: defaultSaveTimeout,
	}
}

func (c *PersistentCart) AddItem(product domain.ProductSnapshot, quantity int) {
	c.Cart.AddItem(product, quantity)
	c.save()
}

func (c *PersistentCart) RemoveItem(productID string) {
	c.Cart.RemoveItem(productID)
	c.save()
}

func (c *PersistentCart) UpdateQuantity(productID string, quantity int) {
	c.Cart.UpdateQuantity(productID, quantity)
	c.save()
}

func (c *PersistentCart) ClearCart() {
	c.Cart.ClearCart()
	c.save()
}

func (c *PersistentCart) save() {
	ctx, cancel := context.WithTimeout(context.Background(), c.saveTimeout)
	defer cancel()

	if err := c.persister.Save(ctx, c.Cart.Items()); err != nil {
		log.Errorf("❌ Failed to save cart: %v", err)
	}
}
