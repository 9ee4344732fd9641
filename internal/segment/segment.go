// Package segment splits raw statement text into logical lines and fields.
// It is the foundation every extractor builds on: splitting is total and
// never fails, worst case a line becomes a single-field row.
package segment

import (
	"strings"
)

// Candidate delimiters, in preference order when counts tie.
var candidates = []rune{',', ';', '\t', '|'}

// Lines splits raw text on any newline convention (\n, \r\n, \r) and drops
// lines that are empty after trimming.
func Lines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// DetectDelimiter inspects the first non-empty line and returns the candidate
// delimiter with the highest occurrence count, ignoring occurrences adjacent
// to a quote character. Defaults to comma when nothing matches.
func DetectDelimiter(text string) rune {
	lines := Lines(text)
	if len(lines) == 0 {
		return ','
	}
	first := []rune(lines[0])

	best := ','
	bestCount := 0
	for _, cand := range candidates {
		count := 0
		for i, r := range first {
			if r != cand {
				continue
			}
			// Skip delimiters hugging a quote; those are usually part of a
			// quoted field boundary, not a separator.
			if i > 0 && (first[i-1] == '"' || first[i-1] == '\'') {
				continue
			}
			if i+1 < len(first) && (first[i+1] == '"' || first[i+1] == '\'') {
				continue
			}
			count++
		}
		if count > bestCount {
			best = cand
			bestCount = count
		}
	}
	return best
}

// SplitFields splits a single line on delim, honoring double-quoted segments.
// A quote toggles the in-quotes state; a delimiter inside quotes is literal.
// Leading/trailing matching quote pairs are stripped from each field. Fields
// are trimmed of surrounding whitespace.
func SplitFields(line string, delim rune) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i, r := range runes {
		switch {
		case r == '"' && (i == 0 || runes[i-1] != '\\'):
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == delim && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())

	for i, f := range fields {
		f = strings.TrimSpace(f)
		if len(f) >= 2 && strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`) {
			f = f[1 : len(f)-1]
		}
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
