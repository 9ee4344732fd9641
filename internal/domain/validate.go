package domain

import (
	"fmt"
	"time"
)

// Problem describes one validation finding on a transaction list.
type Problem struct {
	Index   int // position in the validated slice
	Field   string
	Value   string
	Message string
}

// ValidateTransactions re-checks the canonical invariants over a finished
// transaction list. Constructed transactions always pass; this exists as a
// final gate before handing the list to the export collaborator, catching
// bugs rather than data problems.
func ValidateTransactions(txns []*Transaction) []Problem {
	var problems []Problem

	for i, txn := range txns {
		if txn == nil {
			problems = append(problems, Problem{
				Index: i, Field: "transaction", Message: "nil transaction",
			})
			continue
		}
		if _, err := time.Parse(DateLayout, txn.Date); err != nil {
			problems = append(problems, Problem{
				Index: i, Field: "Date", Value: txn.Date,
				Message: fmt.Sprintf("invalid date format (expected YYYY-MM-DD): %v", err),
			})
		}
		if txn.Payee == "" {
			problems = append(problems, Problem{
				Index: i, Field: "Payee", Message: "payee cannot be empty",
			})
		}
		if txn.inflow.IsNegative() {
			problems = append(problems, Problem{
				Index: i, Field: "Inflow", Value: txn.inflow.String(),
				Message: "inflow cannot be negative",
			})
		}
		if txn.outflow.IsNegative() {
			problems = append(problems, Problem{
				Index: i, Field: "Outflow", Value: txn.outflow.String(),
				Message: "outflow cannot be negative",
			})
		}
		if txn.inflow.IsPositive() && txn.outflow.IsPositive() {
			problems = append(problems, Problem{
				Index: i, Field: "Inflow",
				Value:   fmt.Sprintf("inflow=%s outflow=%s", txn.inflow, txn.outflow),
				Message: "at most one of inflow/outflow may be non-zero",
			})
		}
	}

	return problems
}
