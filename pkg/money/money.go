package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	half    = decimal.NewFromFloat(0.5)
	hundred = decimal.NewFromInt(100)
)

// RoundHalfUp rounds d to places decimals, ties going towards +infinity.
func RoundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(half).Floor().Shift(-places)
}

// Percent converts a percentage (18 for 18%) into a multiplier (0.18).
func Percent(rate decimal.Decimal) decimal.Decimal {
	return rate.Div(hundred)
}

// FormatINR formats an amount as "₹1,23,456.00" using Indian digit grouping.
func FormatINR(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	s := RoundHalfUp(amount.Abs(), 2).StringFixed(2)

	intPart, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2 + 4)
	if neg {
		b.WriteString("-")
	}
	b.WriteString("₹")

	if len(intPart) <= 3 {
		b.WriteString(intPart)
		b.WriteString(frac)
		return b.String()
	}

	head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
	rem := len(head) % 2
	if rem > 0 {
		b.WriteString(head[:rem])
	}
	for i := rem; i < len(head); i += 2 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	b.WriteString(frac)
	return b.String()
}
