package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeparatorConventions(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"$3.75", "3.75"},
		{"$3,75", "3.75"},
		{"$1,234.56", "1234.56"},
		{"$0.89", "0.89"},
		{"2.50", "2.50"},
		{" $4.00 ", "4.00"},
		{"$12", "12"},
		{"$1,234,567.89", "1234567.89"},
	}
	for _, tc := range cases {
		got, err := Parse(tc.token)
		require.NoError(t, err, "token %q", tc.token)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"token %q: got %s, want %s", tc.token, got, tc.want)
	}
}

// A thousands-grouped integer with no fractional part reads as a European
// decimal. Persisted catalog files depend on this, so it is pinned here.
func TestParseGroupedIntegerAmbiguity(t *testing.T) {
	got, err := Parse("$3,750")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("3.750")), "got %s", got)
	assert.False(t, got.Equal(decimal.NewFromInt(3750)))
}

func TestParseMalformed(t *testing.T) {
	for _, token := range []string{"", "$", "abc", "$1.2.3", "$1,2,3.4.5", "1,,2"} {
		_, err := Parse(token)
		require.Error(t, err, "token %q", token)
		assert.ErrorIs(t, err, ErrMalformedPrice)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$3.75", Format(decimal.RequireFromString("3.75")))
	assert.Equal(t, "$3.50", Format(decimal.RequireFromString("3.5")))
	assert.Equal(t, "$12.76", Format(decimal.RequireFromString("12.7587")))
	assert.Equal(t, "$0.00", Format(decimal.Zero))
}
