package extract

import (
	"testing"

	"github.com/ynab-tools/stmtparse/internal/dialect"
)

func TestRawTableAccessorsCopy(t *testing.T) {
	headers := []string{"Date", "Payee"}
	rows := [][]string{{"2025-01-01", "A"}}
	tbl := NewRawTable(headers, rows, "in.csv", dialect.AxisBank)

	// Mutating what the accessors hand back must not leak into the table.
	tbl.Headers()[0] = "MUTATED"
	tbl.Rows()[0][1] = "MUTATED"

	if tbl.Headers()[0] != "Date" {
		t.Error("Headers() exposed internal state")
	}
	if tbl.Rows()[0][1] != "A" {
		t.Error("Rows() exposed internal state")
	}

	// Mutating the constructor inputs must not either.
	headers[1] = "MUTATED"
	rows[0][0] = "MUTATED"
	if tbl.Headers()[1] != "Payee" || tbl.Rows()[0][0] != "2025-01-01" {
		t.Error("NewRawTable() retained caller slices")
	}

	if tbl.RowCount() != 1 || tbl.SourceName() != "in.csv" || tbl.Dialect() != dialect.AxisBank {
		t.Errorf("accessor mismatch: %d rows, %q, %s", tbl.RowCount(), tbl.SourceName(), tbl.Dialect())
	}
}

func TestWithDialect(t *testing.T) {
	tbl := NewRawTable([]string{"a"}, [][]string{{"1"}}, "x.csv", dialect.Unknown)
	retagged := tbl.WithDialect(dialect.HDFCCC)

	if retagged.Dialect() != dialect.HDFCCC {
		t.Errorf("WithDialect() = %s, want %s", retagged.Dialect(), dialect.HDFCCC)
	}
	if tbl.Dialect() != dialect.Unknown {
		t.Error("WithDialect() mutated the receiver")
	}
	if retagged.RowCount() != 1 || retagged.Headers()[0] != "a" {
		t.Error("WithDialect() dropped table data")
	}
}
