// Package extract turns dialect-specific noisy statement text into a clean
// header row plus data rows. Extractors are pure functions over pre-split
// lines; they keep no scanning state between calls.
package extract

import (
	"github.com/ynab-tools/stmtparse/internal/dialect"
)

// RawTable is the tabular form of one statement file: an ordered header row
// and data rows, plus the source file name and the dialect the extractor
// claimed. Instances are immutable once returned; accessors hand out
// defensive copies.
type RawTable struct {
	headers    []string
	rows       [][]string
	sourceName string
	dialect    dialect.Dialect
}

// NewRawTable builds a table. Nil header/row slices are normalized to empty
// so an empty table is always safe to iterate.
func NewRawTable(headers []string, rows [][]string, sourceName string, d dialect.Dialect) *RawTable {
	h := append([]string{}, headers...)
	r := make([][]string, len(rows))
	for i, row := range rows {
		r[i] = append([]string(nil), row...)
	}
	return &RawTable{
		headers:    h,
		rows:       r,
		sourceName: sourceName,
		dialect:    d,
	}
}

// Headers returns a copy of the header row.
func (t *RawTable) Headers() []string {
	return append([]string(nil), t.headers...)
}

// Rows returns a copy of the data rows. Inner slices are copied too so a
// caller cannot mutate the table through the result.
func (t *RawTable) Rows() [][]string {
	rows := make([][]string, len(t.rows))
	for i, r := range t.rows {
		rows[i] = append([]string(nil), r...)
	}
	return rows
}

// RowCount returns the number of data rows without copying.
func (t *RawTable) RowCount() int { return len(t.rows) }

// SourceName returns the originating file name.
func (t *RawTable) SourceName() string { return t.sourceName }

// Dialect returns the dialect the extractor claimed for this table.
func (t *RawTable) Dialect() dialect.Dialect { return t.dialect }

// WithDialect returns a shallow re-tag of the table under another dialect.
// The mapper uses this when detection happens after extraction.
func (t *RawTable) WithDialect(d dialect.Dialect) *RawTable {
	return &RawTable{
		headers:    t.headers,
		rows:       t.rows,
		sourceName: t.sourceName,
		dialect:    d,
	}
}
