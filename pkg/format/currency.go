// Package format renders monetary values for people.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount returns value with thousands separators and exactly digits decimal
// places (e.g., "-1,234.56"). The decimal string is never converted to a
// float, only its integer part is grouped by the printer.
func Amount(value decimal.Decimal, digits int32) string {
	rounded := value.Round(digits)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	intPart, decPart, hasDecimals := strings.Cut(rounded.Abs().StringFixed(digits), ".")
	if whole, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		intPart = message.NewPrinter(language.English).Sprintf("%d", whole)
	}

	if !hasDecimals {
		return sign + intPart
	}
	return sign + intPart + "." + decPart
}

// Percent returns a rate with digits decimal places and a percent sign
// (e.g., "11.50%").
func Percent(rate decimal.Decimal, digits int32) string {
	return rate.StringFixed(digits) + "%"
}
