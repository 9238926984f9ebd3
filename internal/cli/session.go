// Package cli implements the interactive register session.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/quickmart/register/internal/cart"
	"github.com/quickmart/register/internal/catalog"
	"github.com/quickmart/register/internal/checkout"
	"github.com/quickmart/register/internal/config"
	"github.com/quickmart/register/internal/ledger"
	"github.com/quickmart/register/internal/model"
	"github.com/quickmart/register/internal/money"
	"github.com/quickmart/register/internal/obs"
	"github.com/quickmart/register/internal/receipt"
)

// Session drives one register terminal: customer-class selection, the menu
// loop, and checkout. All prompt I/O goes through the injected reader and
// writer so the loop is scriptable in tests.
type Session struct {
	cfg    config.Config
	store  *catalog.Store
	ledger *ledger.Ledger
	in     *bufio.Scanner
	out    io.Writer
}

// NewSession wires a session over the given store and ledger.
func NewSession(cfg config.Config, store *catalog.Store, lg *ledger.Ledger, in io.Reader, out io.Writer) *Session {
	return &Session{cfg: cfg, store: store, ledger: lg, in: bufio.NewScanner(in), out: out}
}

// Run loops over customer sessions until the operator declines to continue
// or input ends.
func (s *Session) Run() {
	fmt.Fprintln(s.out, "=== JERRY'S QUICK MART ===")
	fmt.Fprintln(s.out, "Welcome to our grand opening in Orlando!")
	for {
		class, ok := s.selectCustomerClass()
		if !ok {
			break
		}
		c := cart.New(class)
		if !s.menu(c) {
			break
		}
		if !s.askYes("\nDo you want to process another transaction? (y/n): ") {
			break
		}
	}
	fmt.Fprintln(s.out, "Thank you for shopping at Jerry's Quick Mart!")
}

func (s *Session) selectCustomerClass() (model.CustomerClass, bool) {
	fmt.Fprintln(s.out, "\nSelect customer type:")
	fmt.Fprintln(s.out, "1. Rewards Member")
	fmt.Fprintln(s.out, "2. Regular Customer")
	for {
		line, ok := s.readLine("Option: ")
		if !ok {
			return model.Regular, false
		}
		switch line {
		case "1":
			fmt.Fprintln(s.out, "Rewards Member customer selected.")
			return model.Member, true
		case "2":
			fmt.Fprintln(s.out, "Regular customer selected.")
			return model.Regular, true
		default:
			fmt.Fprintln(s.out, "Invalid option. Enter 1 or 2.")
		}
	}
}

// menu runs the main menu until checkout, cancel, or exit. It returns false
// when the session should end entirely (exit or input exhausted).
func (s *Session) menu(c *cart.Cart) bool {
	for {
		fmt.Fprintln(s.out, "\n=== MAIN MENU ===")
		fmt.Fprintln(s.out, "1. View inventory")
		fmt.Fprintln(s.out, "2. Add item to cart")
		fmt.Fprintln(s.out, "3. View cart")
		fmt.Fprintln(s.out, "4. Remove item from cart")
		fmt.Fprintln(s.out, "5. Clear cart")
		fmt.Fprintln(s.out, "6. Checkout and print receipt")
		fmt.Fprintln(s.out, "7. Cancel transaction")
		fmt.Fprintln(s.out, "8. Exit")
		choice, ok := s.readLine("Select an option: ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			s.showInventory()
		case "2":
			s.addItem(c)
		case "3":
			s.showCart(c)
		case "4":
			s.removeItem(c)
		case "5":
			c.Clear()
			fmt.Fprintln(s.out, "Cart cleared.")
		case "6":
			if s.checkout(c) {
				return true
			}
		case "7":
			c.Clear()
			fmt.Fprintln(s.out, "Transaction cancelled.")
			return true
		case "8":
			return false
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}
	}
}

func (s *Session) showInventory() {
	fmt.Fprintln(s.out, "\n=== CURRENT INVENTORY ===")
	for i, it := range s.store.Items() {
		fmt.Fprintf(s.out, "%d. %s: %d, %s, %s, %s\n",
			i+1, it.Name, it.Stock,
			money.Format(it.RegularPrice), money.Format(it.MemberPrice),
			taxLabel(it.Taxable))
	}
	fmt.Fprintln(s.out)
}

func taxLabel(taxable bool) string {
	if taxable {
		return "Taxable"
	}
	return "Tax-Exempt"
}

func (s *Session) addItem(c *cart.Cart) {
	s.showInventory()
	id, ok := s.readInt("Select product ID: ")
	if !ok {
		return
	}
	it, found := s.store.ItemAt(id)
	if !found {
		fmt.Fprintln(s.out, "Invalid product ID.")
		return
	}
	fmt.Fprintf(s.out, "Product: %s\n", it.Name)
	fmt.Fprintf(s.out, "Available stock: %d\n", it.Stock)
	qty, ok := s.readInt("Quantity: ")
	if !ok {
		return
	}
	if qty <= 0 {
		fmt.Fprintln(s.out, "Quantity must be greater than 0.")
		return
	}
	if c.AddItem(it, qty) {
		fmt.Fprintln(s.out, "Item added to cart.")
	} else {
		fmt.Fprintln(s.out, "Insufficient stock.")
	}
}

func (s *Session) showCart(c *cart.Cart) {
	if c.IsEmpty() {
		fmt.Fprintln(s.out, "The cart is empty.")
		return
	}
	fmt.Fprintln(s.out, "\n=== SHOPPING CART ===")
	for i, ln := range c.Items() {
		fmt.Fprintf(s.out, "%d. %s x%d @ %s = %s\n",
			i+1, ln.Name, ln.Quantity,
			money.Format(ln.UnitPrice), money.Format(ln.Subtotal()))
	}
	fmt.Fprintf(s.out, "Subtotal: %s\n", money.Format(c.Subtotal()))
	fmt.Fprintf(s.out, "Tax: %s\n", money.Format(c.Tax()))
	fmt.Fprintf(s.out, "Total: %s\n", money.Format(c.Total()))
	if c.Class() == model.Member {
		fmt.Fprintf(s.out, "Member savings: %s\n", money.Format(c.MemberSavings()))
	}
	fmt.Fprintln(s.out)
}

func (s *Session) removeItem(c *cart.Cart) {
	if c.IsEmpty() {
		fmt.Fprintln(s.out, "The cart is empty.")
		return
	}
	s.showCart(c)
	id, ok := s.readInt("Select cart item ID to remove: ")
	if !ok {
		return
	}
	ln, found := c.ItemAt(id)
	if !found {
		fmt.Fprintln(s.out, "Invalid cart item ID.")
		return
	}
	fmt.Fprintf(s.out, "Product: %s\n", ln.Name)
	fmt.Fprintf(s.out, "Current quantity in cart: %d\n", ln.Quantity)
	qty, ok := s.readInt("Quantity to remove (0 to remove all): ")
	if !ok {
		return
	}
	if qty < 0 {
		fmt.Fprintln(s.out, "Invalid quantity.")
		return
	}
	if qty == 0 {
		// the cart treats quantities literally; "remove all" is mapped here
		qty = ln.Quantity
	}
	if c.RemoveItem(ln.Name, qty) {
		fmt.Fprintln(s.out, "Item removed from cart.")
	} else {
		fmt.Fprintln(s.out, "Item not found in cart.")
	}
}

// checkout confirms the purchase, collects cash, and runs the transaction.
// It returns true when a transaction completed.
func (s *Session) checkout(c *cart.Cart) bool {
	if c.IsEmpty() {
		fmt.Fprintln(s.out, "The cart is empty.")
		return false
	}
	s.showCart(c)
	if !s.askYes("Confirm purchase? (y/n): ") {
		fmt.Fprintln(s.out, "Purchase cancelled.")
		return false
	}
	line, ok := s.readLine("Cash payment: $")
	if !ok {
		return false
	}
	cash, err := money.Parse(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid amount.")
		return false
	}
	tx, err := checkout.Process(c, cash, s.store, s.ledger)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrInsufficientPayment):
			fmt.Fprintln(s.out, "Insufficient payment.")
		default:
			obs.Logger.Error("checkout_failed", "session", c.Session(), "error", err)
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		return false
	}

	fmt.Fprintln(s.out, "\n=== TRANSACTION COMPLETED ===")
	fmt.Fprint(s.out, receipt.Render(tx))
	if path, err := receipt.Save(s.cfg.ReceiptDir, tx); err != nil {
		obs.Logger.Error("receipt_save_failed", "number", tx.Number, "error", err)
	} else {
		fmt.Fprintf(s.out, "Receipt saved as: %s\n", path)
	}
	c.Clear()
	return true
}

func (s *Session) askYes(prompt string) bool {
	line, ok := s.readLine(prompt)
	if !ok {
		return false
	}
	line = strings.ToLower(line)
	return line == "y" || line == "yes"
}

func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) readInt(prompt string) (int, bool) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
		return 0, false
	}
	return n, true
}
