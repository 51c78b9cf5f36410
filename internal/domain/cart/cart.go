package cart

import (
	"time"

	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is an ordered set of lines. Every effective mutation bumps Version,
// which callers use to discard results computed against an older cart.
//
// Cart is not safe for concurrent use; the store that owns it serializes access.
type Cart struct {
	lines   []Line
	version uint64
}

type Snapshot struct {
	Lines   []Line
	Version uint64
}

func New() *Cart {
	return &Cart{}
}

// Restore rebuilds a cart from persisted lines, merging duplicate keys and
// dropping lines that would break the quantity invariant.
func Restore(lines []Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.quantity < 1 || l.item.ID() == uuid.Nil {
			continue
		}
		if i := c.indexOf(l.Key()); i >= 0 {
			c.lines[i].quantity += l.quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

func (c *Cart) Add(item catalog.Item, size string, quantity int, now time.Time) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if item.ID() == uuid.Nil {
		return ErrInvalidItem
	}

	key := Key{ItemID: item.ID(), Size: size}
	if i := c.indexOf(key); i >= 0 {
		c.lines[i].quantity += quantity
	} else {
		line, err := NewLine(item, size, quantity, now)
		if err != nil {
			return err
		}
		c.lines = append(c.lines, line)
	}
	c.version++
	return nil
}

// UpdateQuantity replaces the quantity of an existing line. A quantity of
// zero or less removes the line. It reports whether the cart changed.
func (c *Cart) UpdateQuantity(itemID uuid.UUID, size string, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(itemID, size)
	}
	i := c.indexOf(Key{ItemID: itemID, Size: size})
	if i < 0 || c.lines[i].quantity == quantity {
		return false
	}
	c.lines[i].quantity = quantity
	c.version++
	return true
}

func (c *Cart) Remove(itemID uuid.UUID, size string) bool {
	i := c.indexOf(Key{ItemID: itemID, Size: size})
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.version++
	return true
}

func (c *Cart) Clear() {
	if len(c.lines) == 0 {
		return
	}
	c.lines = nil
	c.version++
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Snapshot() Snapshot {
	return Snapshot{Lines: c.Lines(), Version: c.version}
}

func (c *Cart) Version() uint64 { return c.version }
func (c *Cart) IsEmpty() bool   { return len(c.lines) == 0 }

func (c *Cart) ItemCount() int {
	return ItemCount(c.lines)
}

func (c *Cart) Subtotal() decimal.Decimal {
	return Subtotal(c.lines)
}

func (c *Cart) indexOf(key Key) int {
	for i, l := range c.lines {
		if l.Key() == key {
			return i
		}
	}
	return -1
}

func ItemCount(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.quantity
	}
	return n
}

// Subtotal sums quantity times unit price over lines using the prices
// captured in the lines themselves.
func Subtotal(lines []Line) decimal.Decimal {
	total := money.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return money.Round(total)
}
