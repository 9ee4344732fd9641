package extract

import (
	"regexp"
	"strings"

	"github.com/ynab-tools/stmtparse/internal/dialect"
	"github.com/ynab-tools/stmtparse/internal/segment"
)

// Axis Bank ledger exports bury the transaction table under a preamble of
// variable length (account holder block, scheme details) and close with
// quoted legal boilerplate. The extractor scans for the header, accepts only
// rows whose first field is date-shaped, and stops at the footer.

const axisFallbackHeaderIndex = 17 // conventional header position in Axis exports

var dateShapePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2,4}$`), // DD-MM-YYYY, DD/MM/YYYY
	regexp.MustCompile(`^\d{2,4}[-/]\d{1,2}[-/]\d{1,2}$`), // YYYY-MM-DD, YYYY/MM/DD
}

// LooksLikeDate reports whether a field has the shape of a numeric date.
func LooksLikeDate(value string) bool {
	value = strings.TrimSpace(value)
	for _, p := range dateShapePatterns {
		if p.MatchString(value) {
			return true
		}
	}
	return false
}

// axisFooter reports whether a line is ledger footer/legal boilerplate.
func axisFooter(line string) bool {
	return strings.HasPrefix(line, `"Unless`) ||
		strings.HasPrefix(line, "Legend") ||
		strings.Contains(line, "REGISTERED OFFICE") ||
		strings.Contains(line, "The closing balance")
}

// findAxisHeader locates the transaction header line. It tries an exact
// token search, then a relaxed case-insensitive search, then the
// conventional fixed offset. Returns -1 when every strategy fails.
func findAxisHeader(lines []string) int {
	for i, line := range lines {
		if (strings.Contains(line, "Tran Date") || strings.Contains(line, "Transaction Date")) &&
			(strings.Contains(line, "PARTICULARS") || strings.Contains(line, "Particulars")) {
			return i
		}
	}
	for i, line := range lines {
		lower := strings.ToLower(line)
		if (strings.Contains(lower, "date") || strings.Contains(lower, "tran")) &&
			(strings.Contains(lower, "particular") || strings.Contains(lower, "narration")) {
			return i
		}
	}
	if len(lines) > axisFallbackHeaderIndex {
		return axisFallbackHeaderIndex
	}
	return -1
}

// AxisBank extracts the transaction table from an Axis Bank ledger export.
// Returns an empty Unknown-tagged table when no plausible header is found,
// never an error: structural failure surfaces as zero rows.
func AxisBank(content, sourceName string) *RawTable {
	lines := segment.Lines(content)

	headerIdx := findAxisHeader(lines)
	if headerIdx == -1 {
		return NewRawTable(nil, nil, sourceName, dialect.Unknown)
	}

	headers := segment.SplitFields(lines[headerIdx], ',')
	if len(headers) < 3 ||
		(!headerMentions(headers, "date") && !headerMentions(headers, "tran")) ||
		(!headerMentions(headers, "particular") && !headerMentions(headers, "narration")) {
		return NewRawTable(nil, nil, sourceName, dialect.Unknown)
	}

	var rows [][]string
	for i := headerIdx + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || axisFooter(line) {
			continue
		}
		// A long quoted line marks the start of the legal footer.
		if strings.HasPrefix(line, `"`) && len(line) > 30 {
			break
		}

		fields := segment.SplitFields(line, ',')
		if len(fields) < 3 || !LooksLikeDate(fields[0]) {
			continue
		}
		// Short rows are right-padded to header width so column lookups
		// stay in bounds downstream.
		for len(fields) < len(headers) {
			fields = append(fields, "")
		}
		rows = append(rows, fields)
	}

	// Best-effort recovery: some exports format rows oddly enough that the
	// date-shape check rejects everything. Scan a short window after the
	// header for any delimited line carrying a digit.
	if len(rows) == 0 {
		limit := headerIdx + 20
		if limit > len(lines) {
			limit = len(lines)
		}
		for i := headerIdx + 1; i < limit; i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" || !strings.Contains(line, ",") ||
				strings.HasPrefix(line, `"`) || strings.Contains(line, "Unless") {
				continue
			}
			fields := segment.SplitFields(line, ',')
			if len(fields) >= 3 && containsDigit(fields) {
				rows = append(rows, fields)
			}
		}
	}

	return NewRawTable(headers, rows, sourceName, dialect.AxisBank)
}

func headerMentions(headers []string, token string) bool {
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), token) {
			return true
		}
	}
	return false
}

func containsDigit(fields []string) bool {
	for _, f := range fields {
		for _, r := range f {
			if r >= '0' && r <= '9' {
				return true
			}
		}
	}
	return false
}
