package money

import (
	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits every computed amount is rounded to.
const Scale = 2

var Zero = decimal.Zero

func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -Scale)
}

func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// NonNegative clamps d at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return Zero
	}
	return d
}

func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
