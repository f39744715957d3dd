package helpers

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Number formats an integer with thousands separators ("524,894").
func Number(v int64) string {
	return printer.Sprint(number.Decimal(v))
}

// Decimal formats d with thousands separators and exactly places fraction
// digits. The digits come from the decimal itself, never from a float.
func Decimal(d decimal.Decimal, places int) string {
	if places < 0 {
		places = 0
	}
	fixed := d.StringFixed(int32(places))

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	if frac != "" {
		frac = "." + frac
	}
	return sign + groupThousands(whole) + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Whole formats d without fraction digits when it is integral ("12,500").
func Whole(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return Number(d.IntPart())
	}
	return Decimal(d, 2)
}

// Money renders a fiat balance as "USD 1,775.00".
func Money(currency string, d decimal.Decimal) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return Decimal(d, 2)
	}
	return currency + " " + Decimal(d, 2)
}

// JoinInts renders sizes as "5, 10, 25, 50".
func JoinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, Number(int64(v)))
	}
	return strings.Join(parts, ", ")
}
