// Package domain defines the canonical, dialect-independent transaction
// record that every statement normalizes into.
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the fixed external text encoding for transaction dates.
const DateLayout = "2006-01-02"

// Field length limits enforced at construction.
const (
	MaxPayeeLen = 100
	MaxMemoLen  = 200
)

// Transaction is the canonical output record. Amounts are non-negative with
// two decimal places; at most one of inflow/outflow is non-zero. Instances
// are immutable after construction and owned solely by the caller.
type Transaction struct {
	Date    string // YYYY-MM-DD
	Payee   string
	Memo    string
	Account string // optional, empty for single-account imports

	inflow  decimal.Decimal
	outflow decimal.Decimal
}

// Inflow returns the amount received (non-negative, 2dp).
func (t *Transaction) Inflow() decimal.Decimal { return t.inflow }

// Outflow returns the amount spent (non-negative, 2dp).
func (t *Transaction) Outflow() decimal.Decimal { return t.outflow }

// NewTransaction creates a validated transaction. Amounts are rounded to
// two decimal places. When both sides arrive non-zero, the larger value
// wins and the other is forced to zero; dirty dual-column exports sometimes
// populate both, and one of them is always a balance artifact.
func NewTransaction(date, payee, memo string, inflow, outflow decimal.Decimal) (*Transaction, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if payee == "" {
		return nil, fmt.Errorf("payee cannot be empty")
	}
	if len(payee) > MaxPayeeLen {
		return nil, fmt.Errorf("payee exceeds %d characters", MaxPayeeLen)
	}
	if len(memo) > MaxMemoLen {
		return nil, fmt.Errorf("memo exceeds %d characters", MaxMemoLen)
	}
	if inflow.IsNegative() {
		return nil, fmt.Errorf("inflow cannot be negative: %s", inflow)
	}
	if outflow.IsNegative() {
		return nil, fmt.Errorf("outflow cannot be negative: %s", outflow)
	}

	inflow = inflow.Round(2)
	outflow = outflow.Round(2)

	if inflow.IsPositive() && outflow.IsPositive() {
		if inflow.GreaterThanOrEqual(outflow) {
			outflow = decimal.Zero
		} else {
			inflow = decimal.Zero
		}
	}

	return &Transaction{
		Date:    date,
		Payee:   payee,
		Memo:    memo,
		inflow:  inflow,
		outflow: outflow,
	}, nil
}
