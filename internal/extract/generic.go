package extract

import (
	"fmt"

	"github.com/ynab-tools/stmtparse/internal/dialect"
	"github.com/ynab-tools/stmtparse/internal/segment"
)

// Options configures the generic delimited extractor.
type Options struct {
	Delimiter rune // 0 = auto-detect from the first non-empty line
	SkipRows  int  // non-empty lines to discard before the header
	HasHeader bool // false = synthesize Column1..ColumnN headers
}

// DefaultOptions returns the options the mapper uses for unrecognized files.
func DefaultOptions() Options {
	return Options{Delimiter: 0, SkipRows: 0, HasHeader: true}
}

// Generic extracts a table from plain delimited text: the first non-empty
// line after the skip count is the header, everything after it is data.
// Used whenever no specialized extractor claims the dialect.
func Generic(content, sourceName string, opts Options) *RawTable {
	lines := segment.Lines(content)
	if opts.SkipRows > 0 && opts.SkipRows < len(lines) {
		lines = lines[opts.SkipRows:]
	} else if opts.SkipRows >= len(lines) {
		lines = nil
	}
	if len(lines) == 0 {
		return NewRawTable(nil, nil, sourceName, dialect.Unknown)
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim = segment.DetectDelimiter(lines[0])
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, segment.SplitFields(line, delim))
	}

	var headers []string
	if opts.HasHeader {
		headers = rows[0]
		rows = rows[1:]
	} else {
		for i := range rows[0] {
			headers = append(headers, fmt.Sprintf("Column%d", i+1))
		}
	}

	return NewRawTable(headers, rows, sourceName, dialect.Unknown)
}
