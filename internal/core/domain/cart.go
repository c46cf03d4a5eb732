package domain

import (
	"fmt"
	"slices"
)

type CartEntry struct {
	Product  Product
	Quantity int
}

// Cart maps product identity to a requested quantity. Entries keep
// insertion order so receipt lines come out deterministic.
type Cart struct {
	index   map[string]int
	entries []CartEntry
}

func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add stores the (product, quantity) entry, overwriting any prior
// quantity for the same product identity. The stock check reads the
// catalog snapshot only, nothing is reserved or decremented.
func (c *Cart) Add(p Product, quantity int) error {
	const op = "Cart.Add"

	if quantity < 1 {
		return fmt.Errorf("%s: %q: %w", op, p.Name(), ErrNonPositiveQuantity)
	}
	if quantity > p.AvailableQuantity() {
		return fmt.Errorf("%s: %q: %w", op, p.Name(), ErrExceedsStock)
	}

	if i, ok := c.index[p.ID()]; ok {
		c.entries[i].Quantity = quantity
		return nil
	}
	c.index[p.ID()] = len(c.entries)
	c.entries = append(c.entries, CartEntry{Product: p, Quantity: quantity})
	return nil
}

// Items returns the entries in insertion order.
func (c *Cart) Items() []CartEntry {
	return slices.Clone(c.entries)
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}
