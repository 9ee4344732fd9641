package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field length limits for the canonical transaction record.
const (
	MaxPayeeLen = 100
	MaxMemoLen  = 200
)

// unsafeChars matches everything outside the safe memo/payee alphabet.
var unsafeChars = regexp.MustCompile(`[^\w\s.,\-&@()]`)

// foldAccents strips combining marks so accented characters survive as
// their base letter instead of being blanked by the unsafe-char filter.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// sanitize replaces unsafe characters with spaces, collapses repeated
// whitespace, and truncates to limit with an ellipsis marker.
func sanitize(s string, limit int) string {
	if folded, _, err := transform.String(foldAccents, s); err == nil {
		s = folded
	}

	s = unsafeChars.ReplaceAllString(s, " ")
	s = strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))

	if len(s) > limit {
		s = s[:limit-3] + "..."
	}
	return s
}

// SanitizePayee sanitizes a payee label; empty input becomes "Unknown".
func SanitizePayee(payee string) string {
	if payee == "" {
		return "Unknown"
	}
	out := sanitize(payee, MaxPayeeLen)
	if out == "" {
		return "Unknown"
	}
	return out
}

// SanitizeMemo sanitizes a memo; empty input stays empty.
func SanitizeMemo(memo string) string {
	if memo == "" {
		return ""
	}
	return sanitize(memo, MaxMemoLen)
}
