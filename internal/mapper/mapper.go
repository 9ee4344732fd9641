// Package mapper orchestrates the full normalization flow: detect dialect,
// extract rows, resolve the field mapping, normalize each row, and retry
// alternate mappings when the first yields nothing.
package mapper

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ynab-tools/stmtparse/internal/dialect"
	"github.com/ynab-tools/stmtparse/internal/domain"
	"github.com/ynab-tools/stmtparse/internal/extract"
	"github.com/ynab-tools/stmtparse/internal/mapping"
	"github.com/ynab-tools/stmtparse/internal/normalize"
)

// Mapper maps raw tables to canonical transactions using the static dialect
// mapping registry. Stateless after construction; safe for concurrent use.
type Mapper struct {
	registry *mapping.Registry
}

// New creates a mapper backed by the embedded mapping registry.
func New() (*Mapper, error) {
	reg, err := mapping.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("failed to load mapping registry: %w", err)
	}
	return &Mapper{registry: reg}, nil
}

// NewWithRegistry creates a mapper over a caller-supplied registry.
func NewWithRegistry(reg *mapping.Registry) *Mapper {
	return &Mapper{registry: reg}
}

// Result is the outcome of one mapping run.
type Result struct {
	Transactions []*domain.Transaction
	// Detected is the dialect the table arrived tagged with.
	Detected dialect.Dialect
	// MappingUsed is the dialect whose mapping actually produced the
	// transactions. Differs from Detected when the retry cascade ran; a
	// caller that cares about misclassification should compare the two.
	MappingUsed dialect.Dialect
	RunID       string
}

// MapToTransactions maps every row of the table. It never fails: row-level
// problems drop the row with a diagnostic, and when the detected dialect's
// mapping yields zero transactions every other dialect's mapping is tried in
// deterministic order. Worst case is an empty transaction list. rec may be
// nil. Calling twice on the same table yields identical output.
func (m *Mapper) MapToTransactions(table *extract.RawTable, rec *Recorder) Result {
	detected := table.Dialect()
	if detected == "" {
		detected = dialect.Unknown
	}
	if detected == dialect.Unknown {
		if d := dialect.Detect(table.SourceName(), "", table.Headers()); d != dialect.Unknown {
			rec.Record(StageDetect, "late header detection: %s", d)
			detected = d
		}
	}

	result := Result{Detected: detected, MappingUsed: detected, RunID: rec.RunID()}

	txns := m.applyMapping(table, detected, rec)
	if len(txns) == 0 {
		rec.Record(StageRetry, "no transactions with %s mapping, trying alternates", detected)
		for _, d := range m.registry.Dialects() {
			if d == detected {
				continue
			}
			txns = m.applyMapping(table, d, rec)
			if len(txns) > 0 {
				rec.Record(StageRetry, "extracted %d transactions using %s mapping", len(txns), d)
				result.MappingUsed = d
				break
			}
		}
	}

	result.Transactions = txns
	rec.Record(StageDone, "%d transactions (detected %s, mapping %s)",
		len(txns), result.Detected, result.MappingUsed)
	return result
}

// columnIndices holds the resolved positions for one mapping application.
type columnIndices struct {
	date, payee, memo, amount, inflow, outflow int
}

// applyMapping runs one dialect's mapping over the table. Returns nil when
// a required column cannot be resolved (a mapping gap, which triggers the
// retry cascade in the caller).
func (m *Mapper) applyMapping(table *extract.RawTable, d dialect.Dialect, rec *Recorder) []*domain.Transaction {
	entry := m.registry.Lookup(d)
	headers := table.Headers()

	cols := columnIndices{
		date:    mapping.ResolveColumn(headers, entry.DateField),
		payee:   mapping.ResolveColumn(headers, entry.PayeeField),
		memo:    mapping.ResolveColumn(headers, entry.MemoField),
		amount:  mapping.ResolveColumn(headers, entry.AmountField),
		inflow:  mapping.ResolveColumn(headers, entry.InflowField),
		outflow: mapping.ResolveColumn(headers, entry.OutflowField),
	}

	if cols.date == -1 || cols.payee == -1 {
		rec.Record(StageResolve, "%s mapping gap: date=%d payee=%d in headers %v",
			d, cols.date, cols.payee, headers)
		return nil
	}
	rec.Record(StageResolve, "%s columns: date=%d payee=%d memo=%d amount=%d inflow=%d outflow=%d",
		d, cols.date, cols.payee, cols.memo, cols.amount, cols.inflow, cols.outflow)

	var txns []*domain.Transaction
	for i, row := range table.Rows() {
		txn, err := m.mapRow(row, d, entry, cols)
		if err != nil {
			rec.Record(StageMapRows, "row %d dropped: %v", i, err)
			continue
		}
		txns = append(txns, txn)
	}
	return txns
}

// mapRow normalizes a single extracted row into a canonical transaction.
func (m *Mapper) mapRow(row []string, d dialect.Dialect, entry mapping.Mapping, cols columnIndices) (*domain.Transaction, error) {
	need := cols.date
	if cols.payee > need {
		need = cols.payee
	}
	if len(row) <= need {
		return nil, fmt.Errorf("insufficient fields: have %d, need %d", len(row), need+1)
	}

	date, err := normalize.ParseDate(row[cols.date], entry.DateFormat)
	if err != nil {
		return nil, err
	}

	rawPayee := row[cols.payee]
	var payee, memo string
	switch d {
	case dialect.AxisBank:
		// The particulars field is both the payee source and the memo: the
		// short label goes to payee, the full narration is kept as memo.
		payee = normalize.SanitizePayee(normalize.AxisPayee(rawPayee))
		memo = normalize.SanitizeMemo(rawPayee)
	case dialect.ICICICC:
		payee = normalize.SanitizePayee(normalize.ICICICCPayee(rawPayee))
		if ref := fieldAt(row, cols.memo); ref != "" {
			memo = normalize.SanitizeMemo("Ref: " + ref)
		}
	default:
		payee = normalize.SanitizePayee(rawPayee)
		memo = normalize.SanitizeMemo(fieldAt(row, cols.memo))
	}

	inflow, outflow := m.amounts(row, d, entry, cols)

	return domain.NewTransaction(date, payee, memo, inflow, outflow)
}

// amounts extracts the (inflow, outflow) pair for a row under either the
// single-amount or the dual-column scheme. Amount parse failures normalize
// to zero rather than dropping the row; a dateless row is garbage but a row
// with a bad amount is still a dated, named event.
func (m *Mapper) amounts(row []string, d dialect.Dialect, entry mapping.Mapping, cols columnIndices) (decimal.Decimal, decimal.Decimal) {
	if cols.amount != -1 {
		raw := fieldAt(row, cols.amount)
		amount, err := normalize.ParseAmount(raw, entry.NumberFormat)
		if err != nil {
			return decimal.Zero, decimal.Zero
		}
		// Card statements without an explicit Dr./Cr. marker mean spend.
		if d == dialect.ICICICC &&
			!strings.Contains(raw, normalize.DrMarker) && !strings.Contains(raw, normalize.CrMarker) {
			return decimal.Zero, amount.Abs()
		}
		return normalize.SplitSigned(amount, entry.InvertAmount)
	}

	var inflow, outflow decimal.Decimal
	if cols.inflow != -1 {
		if v, err := normalize.ParseAmount(fieldAt(row, cols.inflow), entry.NumberFormat); err == nil {
			inflow = v.Abs()
		}
	}
	if cols.outflow != -1 {
		if v, err := normalize.ParseAmount(fieldAt(row, cols.outflow), entry.NumberFormat); err == nil {
			outflow = v.Abs()
		}
	}
	return inflow, outflow
}

// fieldAt returns row[idx] or "" when the index is unresolved or out of
// range. Short rows are common in dirty exports.
func fieldAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
