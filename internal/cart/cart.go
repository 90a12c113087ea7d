package cart

import (
	"github.com/grpkarunathilaka/the-restaurant-website/internal/catalog"
)

// Line is one distinct menu item in the cart. The cart never holds two
// lines for the same item id.
type Line struct {
	Item     catalog.MenuItem `json:"item"`
	Quantity int              `json:"quantity"`
	Note     string           `json:"note,omitempty"`
}

// Cart keeps lines in insertion order so the UI renders them stably.
// It is a plain value type owned by one session; the subtotal is always
// recomputed from the lines, never cached.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the item. If a line for the item already
// exists its quantity is incremented instead of appending a duplicate.
func (c *Cart) AddItem(item catalog.MenuItem) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
}

// SetQuantity sets the quantity for the item's line. Quantities of zero
// or less remove the line; an absent item id is a no-op.
func (c *Cart) SetQuantity(itemID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// SetNote attaches a special instruction to the item's line, if present.
func (c *Cart) SetNote(itemID int, note string) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Note = note
			return
		}
	}
}

func (c *Cart) RemoveItem(itemID int) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Item.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount is the total number of units across all lines, used for the
// cart badge. Distinct from len(Lines()).
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
