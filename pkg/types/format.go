package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a price with a dollar sign and thousands separators,
// e.g. 1299 -> "$1,299" and 1399.5 -> "$1,399.50".
func FormatPrice(price decimal.Decimal) string {
	negative := price.IsNegative()
	abs := price.Abs()

	intPart := abs.Truncate(0)
	frac := abs.Sub(intPart)

	grouped := groupThousands(intPart.String())
	out := "$" + grouped
	if !frac.IsZero() {
		out = fmt.Sprintf("$%s.%s", grouped, frac.StringFixed(2)[2:])
	}
	if negative {
		out = "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatLastUpdated renders an ingestion timestamp relative to now.
func FormatLastUpdated(t time.Time) string {
	diff := time.Since(t)
	mins := int(diff.Minutes())
	if mins < 1 {
		return "Just now"
	}
	if mins < 60 {
		return fmt.Sprintf("%d minutes ago", mins)
	}
	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}
	return t.Format("02/01/2006")
}
