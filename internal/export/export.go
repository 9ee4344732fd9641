// Package export renders canonical transactions as YNAB-style delimited
// text. It knows the column order and field escaping, nothing about where
// the text ends up; file I/O belongs to the caller.
package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ynab-tools/stmtparse/internal/domain"
)

// Header is the fixed YNAB import column order.
var Header = []string{"Date", "Payee", "Memo", "Outflow", "Inflow"}

// Options configures rendering.
type Options struct {
	IncludeHeader bool
	SanitizeData  bool // strip characters outside the word/space/.,- set
}

// DefaultOptions returns the options the CLI uses.
func DefaultOptions() Options {
	return Options{IncludeHeader: true, SanitizeData: true}
}

const previewFieldLimit = 25

var previewUnsafe = regexp.MustCompile(`[^\w\s.,\-]`)

// WriteCSV renders the full transaction list to w.
func WriteCSV(w io.Writer, txns []*domain.Transaction, opts Options) error {
	if opts.IncludeHeader {
		if _, err := fmt.Fprintln(w, strings.Join(Header, ",")); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for i, txn := range txns {
		if _, err := fmt.Fprintln(w, renderRow(txn, opts, 0)); err != nil {
			return fmt.Errorf("failed to write transaction %d: %w", i, err)
		}
	}
	return nil
}

// CSVString renders the full transaction list as a single string.
func CSVString(txns []*domain.Transaction, opts Options) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = WriteCSV(&b, txns, opts)
	return b.String()
}

// Preview renders at most maxRows transactions as display lines, truncating
// long payee/memo fields so the table stays readable in a terminal.
func Preview(txns []*domain.Transaction, opts Options, maxRows int) []string {
	var lines []string
	if opts.IncludeHeader {
		lines = append(lines, strings.Join(Header, ","))
	}
	for i, txn := range txns {
		if i >= maxRows {
			break
		}
		lines = append(lines, renderRow(txn, opts, previewFieldLimit))
	}
	return lines
}

// renderRow formats one transaction. fieldLimit > 0 truncates text fields
// for preview display; zero renders them whole.
func renderRow(txn *domain.Transaction, opts Options, fieldLimit int) string {
	payee := formatField(txn.Payee, opts.SanitizeData, fieldLimit)
	memo := formatField(txn.Memo, opts.SanitizeData, fieldLimit)

	outflow := ""
	if txn.Outflow().IsPositive() {
		outflow = txn.Outflow().StringFixed(2)
	}
	inflow := ""
	if txn.Inflow().IsPositive() {
		inflow = txn.Inflow().StringFixed(2)
	}

	return strings.Join([]string{txn.Date, payee, memo, outflow, inflow}, ",")
}

func formatField(field string, sanitize bool, limit int) string {
	if field == "" {
		return ""
	}
	if limit > 0 && len(field) > limit {
		field = field[:limit-3] + "..."
	}
	if sanitize {
		field = previewUnsafe.ReplaceAllString(field, "")
	}
	return escapeField(field)
}

// escapeField quotes a field containing the delimiter, quotes, or newlines,
// doubling embedded quotes per RFC 4180.
func escapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
