// Package cart implements the per-session shopping basket.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quickmart/register/internal/model"
)

// taxRate is the fixed 6.5% sales tax applied to taxable lines.
var taxRate = decimal.New(65, -3)

// Line is one cart entry: a product plus a quantity plus prices frozen at the
// moment the product was added. Later catalog price changes do not affect it.
type Line struct {
	Name        string
	Quantity    int
	UnitPrice   decimal.Decimal
	Taxable     bool
	UnitSavings decimal.Decimal // regular minus member price, per unit
}

// Subtotal returns the line's unit price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Tax returns the tax accrued by the line, zero for exempt items.
func (l Line) Tax() decimal.Decimal {
	if !l.Taxable {
		return decimal.Zero
	}
	return l.Subtotal().Mul(taxRate)
}

// Savings returns the member savings carried by the line.
func (l Line) Savings() decimal.Decimal {
	return l.UnitSavings.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds one customer session's items: an ordered sequence, unique by
// product name. The customer class is fixed at creation.
type Cart struct {
	class   model.CustomerClass
	session string
	items   []Line
}

// New creates an empty cart for the given customer class.
func New(class model.CustomerClass) *Cart {
	return &Cart{class: class, session: uuid.NewString()}
}

// Class returns the cart's customer class.
func (c *Cart) Class() model.CustomerClass { return c.class }

// Session returns the cart's session identifier, used in log fields.
func (c *Cart) Session() string { return c.session }

// AddItem puts qty units of it into the cart at its current price for this
// cart's customer class. If the product is already present the quantities
// merge and the unit price is re-snapshotted; if the catalog cannot cover the
// merged quantity the existing line is left untouched. Returns false without
// mutating anything when stock is insufficient. No partial fulfillment.
func (c *Cart) AddItem(it model.Item, qty int) bool {
	if !it.HasStock(qty) {
		return false
	}
	for i, ln := range c.items {
		if ln.Name == it.Name {
			merged := ln.Quantity + qty
			if !it.HasStock(merged) {
				return false
			}
			c.items[i] = c.newLine(it, merged)
			return true
		}
	}
	c.items = append(c.items, c.newLine(it, qty))
	return true
}

func (c *Cart) newLine(it model.Item, qty int) Line {
	return Line{
		Name:        it.Name,
		Quantity:    qty,
		UnitPrice:   it.Price(c.class),
		Taxable:     it.Taxable,
		UnitSavings: it.MemberSavings(),
	}
}

// RemoveItem takes qty units of the named product out of the cart. A qty at
// or above the line's current quantity deletes the line. qty is literal: 0
// decrements by zero and succeeds without change — callers that want "0 means
// remove all" must map it to the line's quantity themselves. Returns false if
// the product is not in the cart.
func (c *Cart) RemoveItem(name string, qty int) bool {
	for i, ln := range c.items {
		if ln.Name == name {
			if qty >= ln.Quantity {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Quantity -= qty
			}
			return true
		}
	}
	return false
}

// Clear drops every line. Idempotent.
func (c *Cart) Clear() { c.items = nil }

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Items returns a copy of the cart's lines in insertion order.
func (c *Cart) Items() []Line {
	out := make([]Line, len(c.items))
	copy(out, c.items)
	return out
}

// ItemAt returns the line at the given 1-based position.
func (c *Cart) ItemAt(pos int) (Line, bool) {
	if pos < 1 || pos > len(c.items) {
		return Line{}, false
	}
	return c.items[pos-1], true
}

// TotalItems returns the sum of line quantities.
func (c *Cart) TotalItems() int {
	n := 0
	for _, ln := range c.items {
		n += ln.Quantity
	}
	return n
}

// Subtotal sums the line subtotals at full precision.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, ln := range c.items {
		sum = sum.Add(ln.Subtotal())
	}
	return sum
}

// Tax sums the line taxes at full precision; nothing is rounded here.
func (c *Cart) Tax() decimal.Decimal {
	sum := decimal.Zero
	for _, ln := range c.items {
		sum = sum.Add(ln.Tax())
	}
	return sum
}

// Total returns subtotal plus tax, exactly.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.Tax())
}

// MemberSavings sums the line savings. It is exactly zero for a regular-class
// cart no matter what the lines carry.
func (c *Cart) MemberSavings() decimal.Decimal {
	if c.class != model.Member {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, ln := range c.items {
		sum = sum.Add(ln.Savings())
	}
	return sum
}
