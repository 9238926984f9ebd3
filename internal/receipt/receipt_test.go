package receipt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickmart/register/internal/cart"
	"github.com/quickmart/register/internal/checkout"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func memberTx() checkout.Transaction {
	return checkout.Transaction{
		Number: 42,
		Time:   time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC),
		Lines: []cart.Line{
			{Name: "Soda", Quantity: 2, UnitPrice: price("5.49"), Taxable: true, UnitSavings: price("0.50")},
			{Name: "Milk", Quantity: 1, UnitPrice: price("3.25"), UnitSavings: price("0.25")},
		},
		Subtotal:      price("14.23"),
		Tax:           price("0.7137"),
		Total:         price("14.9437"),
		Cash:          price("20"),
		Change:        price("5.0563"),
		MemberSavings: price("1.25"),
		Member:        true,
	}
}

func TestRenderFieldOrder(t *testing.T) {
	out := Render(memberTx())

	wantInOrder := []string{
		"March 5, 2026",
		"TRANSACTION: 000042",
		"ITEM",
		"Soda",
		"Milk",
		"TOTAL NUMBER OF ITEMS SOLD: 3",
		"SUB-TOTAL: $14.23",
		"TAX (6.5%): $0.71",
		"TOTAL: $14.94",
		"CASH: $20.00",
		"CHANGE: $5.06",
		"YOU SAVED: $1.25!",
	}
	pos := 0
	for _, want := range wantInOrder {
		i := strings.Index(out[pos:], want)
		require.GreaterOrEqual(t, i, 0, "missing %q after position %d in:\n%s", want, pos, out)
		pos += i + len(want)
	}
}

func TestRenderLineAmounts(t *testing.T) {
	out := Render(memberTx())
	assert.Contains(t, out, "$5.49")
	assert.Contains(t, out, "$10.98") // 2 x 5.49
	assert.Contains(t, out, "$3.25")
}

func TestRenderNoSavingsLineForRegular(t *testing.T) {
	tx := memberTx()
	tx.Member = false
	tx.MemberSavings = decimal.Zero
	assert.NotContains(t, Render(tx), "YOU SAVED")
}

func TestRenderNoSavingsLineWhenZero(t *testing.T) {
	tx := memberTx()
	tx.MemberSavings = decimal.Zero
	assert.NotContains(t, Render(tx), "YOU SAVED")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	tx := memberTx()
	path, err := Save(dir, tx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "transaction_000042_20260305.txt"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render(tx), string(b))
}

func TestSaveBadDir(t *testing.T) {
	_, err := Save(filepath.Join(t.TempDir(), "missing"), memberTx())
	require.Error(t, err)
}
