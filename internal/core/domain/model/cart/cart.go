// Package cart provides the session-owned shopping cart.
//
// A Cart stages menu item quantities for one customer connection before
// they are committed as an order. It is never persisted and never shared:
// each session owns exactly one Cart, so Cart does no locking.
package cart

import (
	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/errs"
)

// MaxQuantity bounds the quantity of a single item in one cart.
const MaxQuantity = 1000

// Cart maps menu item ids to quantities, remembering the order in which
// items were first added.
type Cart struct {
	itemIDs    []int64
	quantities map[int64]int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{quantities: make(map[int64]int)}
}

// Add stages quantity units of itemID. Adding an item that is already in
// the cart increases its quantity instead of adding a second entry.
func (c *Cart) Add(itemID int64, quantity int) error {
	if _, err := order.NewLine(itemID, quantity); err != nil {
		return err
	}

	current := c.quantities[itemID]
	if quantity > MaxQuantity-current {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity-current)
	}

	if current == 0 {
		c.itemIDs = append(c.itemIDs, itemID)
	}
	c.quantities[itemID] = current + quantity
	return nil
}

// Quantity returns the staged quantity of itemID, zero when absent.
func (c *Cart) Quantity(itemID int64) int {
	return c.quantities[itemID]
}

// Len returns the number of distinct items in the cart.
func (c *Cart) Len() int {
	return len(c.itemIDs)
}

// IsEmpty reports whether nothing is staged.
func (c *Cart) IsEmpty() bool {
	return len(c.itemIDs) == 0
}

// Lines returns a snapshot of the cart as order lines, in first-added order.
// The snapshot is independent of later changes to the cart.
func (c *Cart) Lines() []order.Line {
	lines := make([]order.Line, 0, len(c.itemIDs))
	for _, id := range c.itemIDs {
		line, err := order.NewLine(id, c.quantities[id])
		if err != nil {
			panic(err) // Add keeps every entry valid
		}
		lines = append(lines, line)
	}
	return lines
}

// Clear discards everything staged.
func (c *Cart) Clear() {
	c.itemIDs = nil
	c.quantities = make(map[int64]int)
}
