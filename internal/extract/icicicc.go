package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ynab-tools/stmtparse/internal/dialect"
	"github.com/ynab-tools/stmtparse/internal/segment"
)

// ICICI credit-card statements come in two sub-formats ("current" and
// "last" statement views) with the transaction block introduced by a literal
// "Transaction Details" line. Column roles are resolved from the header line
// when possible and fall back to fixed positions that differ between the two
// sub-formats.

const iciciDrMarker = "Dr."
const iciciCrMarker = "Cr."

var iciciDatePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)

// sectionMarker phrases terminate row collection; everything after them is
// summary data, not transactions.
var iciciSectionMarkers = []string{
	"Statement Summary", "Payment Summary", "Total Due", "Closing Balance",
}

// iciciColumns holds the resolved column role indices for one statement.
type iciciColumns struct {
	date      int
	details   int
	amount    int
	reference int
}

// resolveICICIColumns maps column roles by keyword match against the header
// cells, falling back to the conventional positions for the sub-format.
func resolveICICIColumns(header []string, isLastStatement bool) iciciColumns {
	cols := iciciColumns{date: -1, details: -1, amount: -1, reference: -1}
	for i, cell := range header {
		lower := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case strings.Contains(lower, "date"):
			cols.date = i
		case strings.Contains(lower, "details"):
			cols.details = i
		case strings.Contains(lower, "amount"):
			cols.amount = i
		case strings.Contains(lower, "reference"):
			cols.reference = i
		}
	}

	if cols.date == -1 {
		cols.date = 2
	}
	if cols.details == -1 {
		cols.details = 3
	}
	if cols.amount == -1 {
		if isLastStatement {
			cols.amount = 6
		} else {
			cols.amount = 5
		}
	}
	if cols.reference == -1 {
		if isLastStatement {
			cols.reference = 9
		} else {
			cols.reference = 7
		}
	}
	return cols
}

// ICICICreditCard extracts the transaction table from an ICICI credit-card
// statement export. Returns an empty Unknown-tagged table when the
// "Transaction Details" block cannot be located.
func ICICICreditCard(content, sourceName string) *RawTable {
	lines := segment.Lines(content)

	headerIdx := -1
	for i, line := range lines {
		if strings.Contains(line, "Transaction Details") {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 || headerIdx+1 >= len(lines) {
		return NewRawTable(nil, nil, sourceName, dialect.Unknown)
	}

	isLast := strings.Contains(content, "VIEW LAST STATEMENT")
	headerRow := segment.SplitFields(lines[headerIdx+1], ',')
	cols := resolveICICIColumns(headerRow, isLast)

	// Synthesize canonical headers at the resolved positions so the mapping
	// layer can address columns by name regardless of sub-format.
	width := max4(cols.date, cols.details, cols.amount, cols.reference) + 2
	headers := make([]string, width)
	for i := range headers {
		switch i {
		case cols.date:
			headers[i] = "Transaction Date"
		case cols.details:
			headers[i] = "Details"
		case cols.amount:
			headers[i] = "Amount (INR)"
		case cols.reference:
			headers[i] = "Reference Number"
		default:
			headers[i] = fmt.Sprintf("empty%d", i)
		}
	}

	var rows [][]string
	for i := headerIdx + 2; i < len(lines); i++ {
		line := lines[i]
		if hasSectionMarker(line) {
			break
		}

		fields := segment.SplitFields(line, ',')
		need := max4(cols.date, cols.amount, cols.reference, 0) + 1
		if len(fields) < need {
			continue
		}

		dateVal := strings.TrimSpace(fields[cols.date])
		amountVal := fields[cols.amount]
		if dateVal == "" || amountVal == "" {
			continue
		}
		if !iciciDatePattern.MatchString(dateVal) {
			continue
		}
		if !strings.Contains(amountVal, iciciDrMarker) && !strings.Contains(amountVal, iciciCrMarker) {
			continue
		}
		for len(fields) < width {
			fields = append(fields, "")
		}
		rows = append(rows, fields)
	}

	return NewRawTable(headers, rows, sourceName, dialect.ICICICC)
}

func hasSectionMarker(line string) bool {
	for _, m := range iciciSectionMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

func max4(a, b, c, d int) int {
	m := a
	for _, v := range []int{b, c, d} {
		if v > m {
			m = v
		}
	}
	return m
}
