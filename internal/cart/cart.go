// Package cart holds the per-session shopping cart: an ordered list of
// product/quantity pairs with per-product minimum-order floors and derived
// totals. All operations are total functions; unknown product IDs are
// no-ops, never errors.
package cart

import (
	"sync"

	"github.com/talipby/koroglu-site/internal/domain"
)

// Cart is one session's cart. A mutex guards it so overlapping requests
// from the same session cannot corrupt the entry list.
type Cart struct {
	mu     sync.Mutex
	items  []domain.CartItem
	isOpen bool
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges the product into the cart. An existing entry gets its
// quantity raised by qty; a new entry starts at qty. Either way the result
// is clamped up to the product's minimum order quantity. The product is
// stored as a snapshot, so later catalog edits do not affect the entry.
//
// The engine does not check InStock; callers that care gate it themselves.
func (c *Cart) AddItem(product domain.Product, qty float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity = clampMin(c.items[i].Quantity+qty, c.items[i].Product.MinOrder)
			return
		}
	}
	c.items = append(c.items, domain.CartItem{
		Product:  product,
		Quantity: clampMin(qty, product.MinOrder),
	})
}

// UpdateQuantity sets the entry's quantity, clamped to its minimum order
// quantity. Unknown product IDs are a no-op. Removal is a distinct
// operation; this one can never drop an entry.
func (c *Cart) UpdateQuantity(productID string, qty float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = clampMin(qty, c.items[i].Product.MinOrder)
			return
		}
	}
}

// RemoveItem deletes the entry if present; idempotent.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// TotalPrice folds the current entries; it is recomputed on every call and
// never cached.
func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, item := range c.items {
		total += item.TotalCents()
	}
	return total
}

// TotalItems is the sum of quantities across entries.
func (c *Cart) TotalItems() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Open, Close and IsOpen track the side panel's visibility. Pure UI state.
func (c *Cart) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = true
}

func (c *Cart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = false
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isOpen
}

func clampMin(qty, min float64) float64 {
	if qty < min {
		return min
	}
	return qty
}
