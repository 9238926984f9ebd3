// Package model defines domain types used by the register.
package model

import "github.com/shopspring/decimal"

// CustomerClass selects which of an item's two prices a session pays.
// It is fixed for the lifetime of a cart.
type CustomerClass int

const (
	Regular CustomerClass = iota
	Member
)

func (c CustomerClass) String() string {
	if c == Member {
		return "member"
	}
	return "regular"
}

// Item represents one product in the catalog.
//
// MemberPrice <= RegularPrice is assumed, never enforced: a catalog line that
// violates it loads fine and simply yields negative savings.
type Item struct {
	Name         string
	Stock        int
	RegularPrice decimal.Decimal
	MemberPrice  decimal.Decimal
	Taxable      bool
}

// Price returns the unit price for the given customer class.
func (it Item) Price(class CustomerClass) decimal.Decimal {
	if class == Member {
		return it.MemberPrice
	}
	return it.RegularPrice
}

// MemberSavings returns the per-unit difference between the two prices.
func (it Item) MemberSavings() decimal.Decimal {
	return it.RegularPrice.Sub(it.MemberPrice)
}

// HasStock reports whether at least qty units are available.
func (it Item) HasStock(qty int) bool {
	return it.Stock >= qty
}
