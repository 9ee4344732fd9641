package mapper

import (
	"fmt"

	"github.com/ynab-tools/stmtparse/internal/dialect"
	"github.com/ynab-tools/stmtparse/internal/extract"
	"github.com/ynab-tools/stmtparse/internal/segment"
)

// ErrorKind classifies a parse failure.
type ErrorKind string

const (
	// KindStructural means the transaction block or header could not be
	// located anywhere in the file.
	KindStructural ErrorKind = "structural"
	// KindEmptyInput means the file had no non-empty lines at all.
	KindEmptyInput ErrorKind = "empty-input"
)

// ParseError is the typed failure returned by ParseText. Row-level problems
// never produce one; only whole-file structural failure does.
type ParseError struct {
	Kind     ErrorKind
	FileName string
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.FileName, e.Message, e.Kind)
}

// ParseText turns raw statement text into a RawTable, running dialect
// detection and the matching extractor. The returned table is tagged with
// the detected dialect; detection is advisory and the mapper may still land
// on a different mapping. rec may be nil.
func ParseText(rawText, fileName string, rec *Recorder) (*extract.RawTable, error) {
	if len(segment.Lines(rawText)) == 0 {
		return nil, &ParseError{
			Kind:     KindEmptyInput,
			FileName: fileName,
			Message:  "file has no content",
		}
	}

	detected := dialect.Detect(fileName, rawText, nil)
	rec.Record(StageDetect, "filename/content detection for %s: %s", fileName, detected)

	var table *extract.RawTable
	switch detected {
	case dialect.ICICICC:
		table = extract.ICICICreditCard(rawText, fileName)
	case dialect.AxisBank:
		table = extract.AxisBank(rawText, fileName)
	default:
		table = extract.Generic(rawText, fileName, extract.DefaultOptions())
	}

	// A specialized extractor that found nothing falls back to the generic
	// pass; statements occasionally arrive re-exported as plain tables.
	if len(table.Headers()) == 0 && table.RowCount() == 0 && detected != dialect.Unknown {
		rec.Record(StageExtract, "%s extractor found no transaction block, retrying generic", detected)
		table = extract.Generic(rawText, fileName, extract.DefaultOptions())
	}

	if len(table.Headers()) == 0 && table.RowCount() == 0 {
		rec.Record(StageExtract, "no table extracted from %s", fileName)
		return nil, &ParseError{
			Kind:     KindStructural,
			FileName: fileName,
			Message:  "no transactions extracted",
		}
	}

	// Header-based detection refines the advisory dialect for tables the
	// generic extractor produced.
	if table.Dialect() == dialect.Unknown {
		if d := dialect.Detect(fileName, rawText, table.Headers()); d != dialect.Unknown {
			rec.Record(StageDetect, "header detection for %s: %s", fileName, d)
			table = table.WithDialect(d)
		}
	}

	rec.Record(StageExtract, "extracted %d rows from %s (dialect %s)",
		table.RowCount(), fileName, table.Dialect())
	return table, nil
}
