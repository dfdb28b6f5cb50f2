package store

import (
	"mitrasafety/storefront/internal/domain"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type CartOption func(*Cart)

// WithIDGenerator overrides how line item ids are minted.
func WithIDGenerator(fn func() string) CartOption {
	return func(c *Cart) {
		c.newID = fn
	}
}

// Cart is the in-memory cart ledger. It holds at most one line item per
// product and never keeps a line item with a quantity below one. A Cart is
// not safe for concurrent use.
type Cart struct {
	items     []domain.LineItem
	isOpen    bool
	pricing   domain.Pricing
	newID     func() string
	listeners listeners
}

// NewCart creates a cart hydrated with items, which may be empty.
func NewCart(pricing domain.Pricing, items []domain.LineItem, opts ...CartOption) *Cart {
	c := &Cart{
		items:   make([]domain.LineItem, 0, len(items)),
		pricing: pricing,
		newID: func() string {
			return "cart-" + uuid.NewString()
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, item := range items {
		if item.Quantity < 1 || c.indexOf(item.ProductID) >= 0 {
			log.Warnf("⚠️ Dropping invalid cart line %s for product %s (quantity %d)", item.ID, item.ProductID, item.Quantity)
			continue
		}
		c.items = append(c.items, item)
	}
	return c
}

// AddItem increments the quantity of the line holding product, or creates a
// new line with a snapshot of the product. Quantities below one are ignored.
func (c *Cart) AddItem(product domain.ProductSnapshot, quantity int) {
	if quantity < 1 {
		log.Warnf("⚠️ Ignoring add of product %s with quantity %d", product.ID, quantity)
		return
	}

	if i := c.indexOf(product.ID); i >= 0 {
		c.items[i].Quantity += quantity
	} else {
		c.items = append(c.items, domain.LineItem{
			ID:        c.newID(),
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
			ImageURL:  product.ImageURL,
		})
	}
	c.listeners.notify()
}

// RemoveItem deletes the line for productID. Absent products are a no-op.
func (c *Cart) RemoveItem(productID string) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.listeners.notify()
}

// UpdateQuantity sets the quantity of the line for productID. A quantity of
// zero or less removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.items[i].Quantity = quantity
	c.listeners.notify()
}

func (c *Cart) ClearCart() {
	c.items = make([]domain.LineItem, 0)
	c.listeners.notify()
}

func (c *Cart) OpenCart() {
	c.isOpen = true
	c.listeners.notify()
}

func (c *Cart) CloseCart() {
	c.isOpen = false
	c.listeners.notify()
}

func (c *Cart) IsOpen() bool {
	return c.isOpen
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []domain.LineItem {
	return append(make([]domain.LineItem, 0, len(c.items)), c.items...)
}

func (c *Cart) Pricing() domain.Pricing {
	return c.pricing
}

func (c *Cart) TotalItems() int {
	return TotalItems(c.items)
}

func (c *Cart) Subtotal() int64 {
	return Subtotal(c.items)
}

func (c *Cart) Shipping() int64 {
	return Shipping(c.Subtotal(), c.pricing)
}

func (c *Cart) Total() int64 {
	return c.Subtotal() + c.Shipping()
}

func (c *Cart) Totals() domain.CartTotals {
	return Totals(c.items, c.pricing)
}

func (c *Cart) Subscribe(fn func()) func() {
	return c.listeners.add(fn)
}

func (c *Cart) indexOf(productID string) int {
	for i, item := range c.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
