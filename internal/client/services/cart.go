package services

import (
	"fmt"

	"github.com/dmikhr/stylecart/internal/client/models"
	"github.com/dmikhr/stylecart/internal/common"
)

// Cart is the client-local shopping cart: an ordered set of lines unique by
// product id. It is memory-only and does not survive a restart. Every
// surviving line has Quantity > 0; a decrement that would reach zero removes
// the line instead.
type Cart struct {
	lines []models.CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of p into the cart. An existing line for p.ID has its
// quantity incremented; otherwise a new line is appended, snapshotting the
// product's current name and price. The snapshot is never re-synced to later
// catalog changes.
func (c *Cart) Add(p models.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ProductID:  p.ID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Quantity:   1,
	})
}

// Increment raises the quantity of the line for productID by one.
func (c *Cart) Increment(productID int64) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return nil
		}
	}
	return fmt.Errorf("product %d: %w", productID, common.ErrNotFound)
}

// Decrement lowers the quantity of the line for productID by one. A line at
// quantity 1 is removed entirely.
func (c *Cart) Decrement(productID int64) error {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		if c.lines[i].Quantity <= 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity--
		}
		return nil
	}
	return fmt.Errorf("product %d: %w", productID, common.ErrNotFound)
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalCents is the client-side estimate Σ price × quantity. The server
// recomputes the authoritative total at checkout.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.SubtotalCents()
	}
	return total
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }
