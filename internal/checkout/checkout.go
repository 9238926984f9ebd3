// Package checkout runs the register's transaction sequence.
package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quickmart/register/internal/cart"
	"github.com/quickmart/register/internal/catalog"
	"github.com/quickmart/register/internal/ledger"
	"github.com/quickmart/register/internal/model"
	"github.com/quickmart/register/internal/obs"
)

var (
	// ErrEmptyCart reports a checkout attempted with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInsufficientPayment reports cash tendered below the cart total.
	ErrInsufficientPayment = errors.New("insufficient payment")
)

// Transaction is the immutable record of a completed sale.
type Transaction struct {
	Number        int
	Time          time.Time
	Lines         []cart.Line
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Cash          decimal.Decimal
	Change        decimal.Decimal
	MemberSavings decimal.Decimal
	Member        bool
}

// TotalItems returns the sum of line quantities.
func (t Transaction) TotalItems() int {
	n := 0
	for _, ln := range t.Lines {
		n += ln.Quantity
	}
	return n
}

// Process validates payment, issues the transaction number, commits the
// cart's stock deltas into the catalog, persists the catalog, and returns
// the transaction record. The cart and catalog are untouched when payment is
// insufficient.
//
// There is no rollback path: once the ledger number is issued, a catalog
// persistence failure leaves the counter consumed and the catalog partially
// updated. Callers must treat that error as fatal to the session, not as
// something to retry mid-transaction.
func Process(c *cart.Cart, cash decimal.Decimal, store *catalog.Store, lg *ledger.Ledger) (Transaction, error) {
	if c.IsEmpty() {
		return Transaction{}, ErrEmptyCart
	}
	total := c.Total()
	if cash.LessThan(total) {
		return Transaction{}, ErrInsufficientPayment
	}

	num, err := lg.Next()
	if err != nil {
		return Transaction{}, err
	}

	for _, ln := range c.Items() {
		it, ok := store.Get(ln.Name)
		if !ok {
			continue
		}
		left := it.Stock - ln.Quantity
		if left < 0 {
			left = 0 // clamp, stock never goes negative
		}
		store.SetStock(ln.Name, left)
	}
	if err := store.Save(); err != nil {
		return Transaction{}, fmt.Errorf("persist catalog: %w", err)
	}

	tx := Transaction{
		Number:        num,
		Time:          time.Now(),
		Lines:         c.Items(),
		Subtotal:      c.Subtotal(),
		Tax:           c.Tax(),
		Total:         total,
		Cash:          cash,
		Change:        cash.Sub(total),
		MemberSavings: c.MemberSavings(),
		Member:        c.Class() == model.Member,
	}
	obs.Logger.Info("transaction_completed",
		"number", tx.Number,
		"session", c.Session(),
		"class", c.Class().String(),
		"items", tx.TotalItems(),
		"total", tx.Total.StringFixed(2),
	)
	return tx, nil
}
