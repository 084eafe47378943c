package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol and CurrencyPrecision fix how every amount is displayed.
const (
	CurrencyCode      = "INR"
	CurrencySymbol    = "₹"
	CurrencyPrecision = 0
)

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}

// FormatCurrency renders an amount as rupees with Indian digit grouping and
// no decimals, e.g. 1234567.8 -> "₹12,34,568".
func FormatCurrency(amount decimal.Decimal) string {
	s := FormatWithPrecision(amount, CurrencyPrecision)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	return sign + CurrencySymbol + groupIndian(s)
}

// groupIndian inserts separators after the last three digits and then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
