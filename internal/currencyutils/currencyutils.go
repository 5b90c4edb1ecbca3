// Package currencyutils provides parsing and formatting for monetary
// amounts in the Brazilian format used throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var currencyRe = regexp.MustCompile(`[R$\s]`)

// ParseAmount parses a string amount into a decimal value. It accepts
// both the canonical form ("1234.56") and the Brazilian form with "." as
// thousands separator and "," as decimal separator ("1.234,56"),
// optionally prefixed with "R$".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts a Brazilian-formatted amount string to a
// form decimal.NewFromString accepts. Handles "R$ 1.234,56", "1.234,56",
// "1234,56" and already-canonical "1234.56".
func StandardizeAmount(amountStr string) string {
	amountStr = currencyRe.ReplaceAllString(amountStr, "")

	if strings.Contains(amountStr, ",") {
		// Brazilian format: dots are thousands separators, the comma is
		// the decimal separator.
		amountStr = strings.ReplaceAll(amountStr, ".", "")
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	}

	return amountStr
}

// FormatAmount renders a decimal amount as "R$ 1234,56" with two decimal
// places, using the comma as decimal separator.
func FormatAmount(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	fixed = strings.ReplaceAll(fixed, ".", ",")
	return "R$ " + fixed
}

// PercentageOf returns base * percent / 100.
// e.g. PercentageOf(1000, 5) returns 50.
func PercentageOf(base decimal.Decimal, percent decimal.Decimal) decimal.Decimal {
	return base.Mul(percent).Div(decimal.NewFromInt(100))
}

// IsPositive checks if an amount is strictly positive
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}
