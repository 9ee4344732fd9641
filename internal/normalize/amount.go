// Package normalize contains the pure value normalizers: amount cleaning,
// date parsing, payee extraction, and string sanitization. None of them
// keep state; a row either normalizes or reports why it cannot.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ynab-tools/stmtparse/internal/mapping"
)

// Debit/credit markers used by Indian card statements.
const (
	DrMarker = "Dr."
	CrMarker = "Cr."
)

var (
	currencyTokens = []string{DrMarker, CrMarker, "₹", "Rs.", "INR"}
	nonAmountChars = regexp.MustCompile(`[^\d.-]`)
	multiSpace     = regexp.MustCompile(`\s+`)
)

// CleanAmount strips currency tokens, the configured thousands separator,
// and Dr./Cr. markers from a raw amount field, normalizes the decimal
// separator to '.', and applies the marker sign convention: Dr. forces a
// negative result, Cr. forces non-negative. Empty or placeholder input
// cleans to "0". The result always parses as a decimal number.
func CleanAmount(value string, nf mapping.NumberFormat) string {
	if value == "" {
		return "0"
	}

	trimmed := value
	if nf.TrimInteriorSpaces {
		trimmed = strings.TrimSpace(multiSpace.ReplaceAllString(trimmed, " "))
	} else {
		trimmed = strings.TrimSpace(trimmed)
	}

	isDr := strings.Contains(trimmed, DrMarker)
	isCr := strings.Contains(trimmed, CrMarker)

	cleaned := trimmed
	for _, tok := range currencyTokens {
		cleaned = strings.ReplaceAll(cleaned, tok, "")
	}
	if nf.ThousandsSeparator != "" {
		cleaned = strings.ReplaceAll(cleaned, nf.ThousandsSeparator, "")
	}
	if nf.DecimalSeparator != "" && nf.DecimalSeparator != "." {
		cleaned = strings.ReplaceAll(cleaned, nf.DecimalSeparator, ".")
	}
	cleaned = nonAmountChars.ReplaceAllString(cleaned, "")

	if isDr && !strings.HasPrefix(cleaned, "-") {
		cleaned = "-" + cleaned
	} else if isCr {
		cleaned = strings.TrimPrefix(cleaned, "-")
	}

	if cleaned == "" || cleaned == "-" || cleaned == "." || cleaned == "-." {
		return "0"
	}
	return cleaned
}

// ParseAmount cleans and parses a raw amount field into a signed decimal.
// Unparseable input is an error; the caller decides whether that drops the
// row or zeroes the field.
func ParseAmount(value string, nf mapping.NumberFormat) (decimal.Decimal, error) {
	cleaned := CleanAmount(value, nf)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q (cleaned %q): %w", value, cleaned, err)
	}
	return d, nil
}

// SplitSigned converts a signed amount into the (inflow, outflow) pair under
// the dialect's single-column convention. With invert set (the credit-card
// convention) a positive value is spend; otherwise a positive value is
// income. Both results are non-negative.
func SplitSigned(amount decimal.Decimal, invert bool) (inflow, outflow decimal.Decimal) {
	if invert {
		if amount.IsPositive() {
			return decimal.Zero, amount
		}
		return amount.Abs(), decimal.Zero
	}
	if amount.IsNegative() {
		return decimal.Zero, amount.Abs()
	}
	return amount, decimal.Zero
}
