package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ynab-tools/stmtparse/internal/mapping"
)

// CanonicalDateLayout is the fixed external text encoding for dates.
const CanonicalDateLayout = "2006-01-02"

var (
	// Anchored so a four-digit year is never mistaken for a day-month pair.
	numericDatePattern = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})`)
	isoDatePattern     = regexp.MustCompile(`^(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})`)
	textualDatePattern = regexp.MustCompile(`^(\d{1,2})\s+([a-zA-Z]{3})\s+(\d{4})`)
)

var monthAbbrevs = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// fallbackLayouts are tried last, after the format-directed patterns fail.
var fallbackLayouts = []string{
	"2006-01-02", "2006/01/02", "02-01-2006", "02/01/2006",
	"2 Jan 2006", "02 Jan 2006", "Jan 2, 2006", time.RFC3339,
}

// expandTwoDigitYear resolves a two-digit year against the pivot rule: a
// value beyond (currentYear mod 100) + 20 belongs to the previous century.
// Statements list recent history, so "99" in 2026 means 1999, not 2099.
func expandTwoDigitYear(two int, now time.Time) int {
	century := now.Year() / 100 * 100
	if two > now.Year()%100+20 {
		return century - 100 + two
	}
	return century + two
}

// ParseDate parses a raw statement date under the dialect's declared
// component order and returns the canonical YYYY-MM-DD form. A final pass
// over generic layouts runs before giving up. Rows whose dates fail here
// are skipped by the mapper, never fatal.
func ParseDate(raw string, order mapping.DateOrder) (string, error) {
	return parseDateAt(raw, order, time.Now())
}

// parseDateAt is ParseDate with an injected clock so the two-digit-year
// pivot is testable.
func parseDateAt(raw string, order mapping.DateOrder, now time.Time) (string, error) {
	cleaned := multiSpace.ReplaceAllString(strings.TrimSpace(raw), " ")
	if cleaned == "" {
		return "", fmt.Errorf("empty date")
	}

	switch order {
	case mapping.DMY, mapping.MDY:
		if m := numericDatePattern.FindStringSubmatch(cleaned); m != nil {
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			if len(m[3]) == 2 {
				year = expandTwoDigitYear(year, now)
			}

			day, month := a, b
			if order == mapping.MDY {
				day, month = b, a
			}
			if date, ok := buildDate(year, month, day); ok {
				return date, nil
			}
		}
	case mapping.YMD:
		if m := isoDatePattern.FindStringSubmatch(cleaned); m != nil {
			year, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			day, _ := strconv.Atoi(m[3])
			if date, ok := buildDate(year, month, day); ok {
				return date, nil
			}
		}
	}

	// Textual form: "1 Apr 2025".
	if m := textualDatePattern.FindStringSubmatch(cleaned); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		if month, ok := monthAbbrevs[strings.ToLower(m[2])]; ok {
			if date, ok := buildDate(year, int(month), day); ok {
				return date, nil
			}
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format(CanonicalDateLayout), nil
		}
	}

	return "", fmt.Errorf("unparseable date %q", raw)
}

// buildDate validates the components and formats the canonical form.
// time.Date normalizes out-of-range components, so round-trip equality is
// the validity check.
func buildDate(year, month, day int) (string, bool) {
	if year < 1000 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format(CanonicalDateLayout), true
}
