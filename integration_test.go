package stmtparse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ynab-tools/stmtparse/internal/dialect"
	"github.com/ynab-tools/stmtparse/internal/domain"
	"github.com/ynab-tools/stmtparse/internal/export"
	"github.com/ynab-tools/stmtparse/internal/mapper"
	"github.com/ynab-tools/stmtparse/internal/scanner"
)

const axisFixture = `Name :- MR TEST USER
Customer ID :- 900000001

Tran Date,CHQNO,PARTICULARS,DR,CR,BAL,SOL
16-03-2025,-,NBSM/96863804/CRED(RAZORPAY)/,  4439.59, ,604111.30,4875
17-03-2025,-,UPI-545556998922-DREAMPLUG TECHNOLOGIES PVT LTD, ,1200.00,605311.30,4875
TRANSACTION TOTAL,,,4439.59,1200.00,,
"Unless the constituent notifies the bank immediately of any discrepancy found in this statement, the account will be taken as correct."
`

const iciciCCFixture = `VIEW CURRENT STATEMENT
Transaction Details
,,Date,Details,,Amount,,Reference Number,
,,15/04/2025,"AMAZON PAY INDIA PRIVA, wwwamazonin, IND",,2500.00 Dr.,,74323995105,
,,20/04/2025,PAYMENT RECEIVED,,5000.00 Cr.,,74323995300,
Statement Summary
`

const genericFixture = `Date,Description,Remarks,Debit,Credit
01/02/2025,GROCERY STORE,weekly,250.00,
02/02/2025,SALARY FEB,,,50000.00
`

// TestIntegration_FullPipeline runs scan, parse, map, validate, and export
// over a directory of mixed-dialect statement fixtures.
func TestIntegration_FullPipeline(t *testing.T) {
	dir := t.TempDir()
	fixtures := map[string]string{
		"axis-bank-statement.csv": axisFixture,
		"icici-cc-april.csv":      iciciCCFixture,
		"download.csv":            genericFixture,
	}
	for name, content := range fixtures {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := scanner.New(dir).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(files) != len(fixtures) {
		t.Fatalf("Scan() found %d files, want %d", len(files), len(fixtures))
	}

	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New() error = %v", err)
	}

	var all []*domain.Transaction
	seenDialects := map[dialect.Dialect]bool{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}

		rec := mapper.NewRecorder()
		table, err := mapper.ParseText(string(data), filepath.Base(file), rec)
		if err != nil {
			t.Fatalf("ParseText(%s) error = %v", file, err)
		}

		result := m.MapToTransactions(table, rec)
		if len(result.Transactions) == 0 {
			t.Errorf("%s produced no transactions; diagnostics: %v", file, rec.Events())
		}
		if result.RunID == "" {
			t.Errorf("%s: missing run ID", file)
		}
		seenDialects[result.MappingUsed] = true
		all = append(all, result.Transactions...)
	}

	if !seenDialects[dialect.AxisBank] || !seenDialects[dialect.ICICICC] || !seenDialects[dialect.Unknown] {
		t.Errorf("expected all three mappings to be exercised, got %v", seenDialects)
	}

	if problems := domain.ValidateTransactions(all); len(problems) != 0 {
		t.Fatalf("validation problems: %v", problems)
	}

	csv := export.CSVString(all, export.DefaultOptions())
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != len(all)+1 {
		t.Fatalf("exported %d lines for %d transactions", len(lines), len(all))
	}
	if lines[0] != "Date,Payee,Memo,Outflow,Inflow" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(csv, "2025-03-16") {
		t.Error("export missing the Axis spend date")
	}
	if !strings.Contains(csv, "4439.59") {
		t.Error("export missing the Axis spend amount")
	}
	if !strings.Contains(csv, "AMAZON PAY INDIA PRIVA") {
		t.Error("export missing the card merchant payee")
	}
}
