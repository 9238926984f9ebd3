// Package money parses and renders dollar amounts as exact decimals.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedPrice reports a price token that cannot be parsed.
var ErrMalformedPrice = errors.New("malformed price")

// Parse converts a price token such as "$3.75" into an exact decimal.
//
// The separator convention is inferred from the token itself: when both a
// comma and a period are present, the comma is a thousands separator and is
// dropped ("$1,234.56" -> 1234.56); a lone comma is a decimal point
// ("$3,75" -> 3.75). A thousands-grouped integer such as "$3,750" is
// therefore read as 3.75, not 3750. Existing catalog files depend on that
// reading, so it must not change.
func Parse(token string) (decimal.Decimal, error) {
	s := strings.TrimSpace(strings.ReplaceAll(token, "$", ""))
	switch {
	case strings.Contains(s, ",") && strings.Contains(s, "."):
		s = strings.ReplaceAll(s, ",", "")
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrMalformedPrice, token)
	}
	return d, nil
}

// Format renders d as a fixed two-decimal dollar amount, e.g. "$3.75".
// Extra precision is rounded away; this is the only place money is rounded.
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
