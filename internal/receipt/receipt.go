// Package receipt renders and persists transaction receipts.
package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quickmart/register/internal/checkout"
)

const separator = "************************************"

// Render produces the receipt text block for a transaction: date, six-digit
// transaction number, the item table, item count, totals, cash and change,
// and a savings line only for a member transaction with positive savings.
// Field order is part of the external contract.
func Render(tx checkout.Transaction) string {
	var b strings.Builder
	b.WriteString(tx.Time.Format("January 2, 2006") + "\n")
	fmt.Fprintf(&b, "TRANSACTION: %06d\n\n", tx.Number)

	fmt.Fprintf(&b, "%-12s %-10s %-12s %-8s\n", "ITEM", "QUANTITY", "UNIT PRICE", "TOTAL")
	for _, ln := range tx.Lines {
		fmt.Fprintf(&b, "%-12s %-10d $%-11s $%-7s\n",
			ln.Name, ln.Quantity,
			ln.UnitPrice.StringFixed(2), ln.Subtotal().StringFixed(2))
	}
	b.WriteString("\n")
	b.WriteString(separator + "\n")

	fmt.Fprintf(&b, "TOTAL NUMBER OF ITEMS SOLD: %d\n", tx.TotalItems())
	fmt.Fprintf(&b, "SUB-TOTAL: $%s\n", tx.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "TAX (6.5%%): $%s\n", tx.Tax.StringFixed(2))
	fmt.Fprintf(&b, "TOTAL: $%s\n", tx.Total.StringFixed(2))
	fmt.Fprintf(&b, "CASH: $%s\n", tx.Cash.StringFixed(2))
	fmt.Fprintf(&b, "CHANGE: $%s\n", tx.Change.StringFixed(2))
	b.WriteString("\n")
	b.WriteString(separator + "\n")

	if tx.Member && tx.MemberSavings.IsPositive() {
		fmt.Fprintf(&b, "YOU SAVED: $%s!\n", tx.MemberSavings.StringFixed(2))
	}
	return b.String()
}

// Filename returns the receipt file name for a transaction, keyed by
// transaction number and date.
func Filename(tx checkout.Transaction) string {
	return fmt.Sprintf("transaction_%06d_%s.txt", tx.Number, tx.Time.Format("20060102"))
}

// Save writes the rendered receipt into dir and returns the file path.
func Save(dir string, tx checkout.Transaction) (string, error) {
	path := filepath.Join(dir, Filename(tx))
	if err := os.WriteFile(path, []byte(Render(tx)), 0o644); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}
	return path, nil
}
