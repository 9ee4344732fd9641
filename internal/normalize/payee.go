package normalize

import (
	"regexp"
	"strings"
)

// Payee extraction turns free-text transaction narrations into a short human
// label. Each bank encodes counterparty names differently inside the text,
// so dispatch is on embedded channel tokens (IMPS, NBSM, UPI) with pattern
// fallbacks behind each branch.

var (
	impsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)IMPS/\w+/\d+/([^/]+)`),
		regexp.MustCompile(`(?i)IMPS-(?:\w+)-([^-/]+)`),
		regexp.MustCompile(`(?i)IMPS[/\s]([^/\s]+)`),
		regexp.MustCompile(`(?i)IMPS-[^/]+-([^/]+)`),
	}
	upiTrailingName = regexp.MustCompile(`(?i)UPI-\d+-(.+)`)
	upiPatterns     = []*regexp.Regexp{
		regexp.MustCompile(`(?i)UPI[/\s]([^/\s]+)`),
		regexp.MustCompile(`(?i)UPI-[^/]+-([^/]+)`),
		regexp.MustCompile(`(?i)TO\s+([^/\s]+)`),
	}
	allDigits     = regexp.MustCompile(`^\d+$`)
	tokenSplitter = regexp.MustCompile(`[/\-\s]+`)
)

// stopwords are narration tokens that never name a counterparty.
var stopwords = map[string]struct{}{
	"REF": {}, "TRN": {}, "TO": {}, "BY": {}, "ON": {}, "FOR": {},
}

// AxisPayee extracts a payee label from an Axis Bank PARTICULARS field.
func AxisPayee(particulars string) string {
	if particulars == "" {
		return "Unknown"
	}

	if strings.Contains(particulars, "IMPS") {
		return axisIMPSPayee(particulars)
	}

	// NBSM narrations look like "NBSM/96863804/CRED(RAZORPAY)/"; the third
	// slash segment is the merchant.
	if strings.Contains(particulars, "NBSM") {
		parts := strings.Split(particulars, "/")
		if len(parts) >= 3 {
			return strings.TrimSpace(parts[2])
		}
	}

	if strings.Contains(particulars, "UPI") {
		return axisUPIPayee(particulars)
	}

	// Anything else: first token longer than two characters that is neither
	// numeric nor a stopword.
	for _, part := range tokenSplitter.Split(particulars, -1) {
		cleaned := strings.TrimSpace(part)
		if len(cleaned) > 2 && !allDigits.MatchString(cleaned) {
			if _, stop := stopwords[strings.ToUpper(cleaned)]; !stop {
				return cleaned
			}
		}
	}

	return truncateLabel(particulars, 30)
}

// axisIMPSPayee handles narrations like
// "IMPS/P2A/511619321843/SHUBHANG/ICICIBANK/...": the fourth slash segment
// carries the counterparty name.
func axisIMPSPayee(particulars string) string {
	parts := strings.Split(particulars, "/")
	if len(parts) >= 4 {
		if name := strings.TrimSpace(parts[3]); name != "" {
			return name
		}
	}

	for _, p := range impsPatterns {
		if m := p.FindStringSubmatch(particulars); m != nil {
			captured := strings.TrimSpace(m[1])
			if len(captured) > 1 && !allDigits.MatchString(captured) {
				return captured
			}
		}
	}

	return "IMPS Transfer"
}

// axisUPIPayee handles narrations like "UPI-545556998922-DREAMPLUG
// TECHNOLOGIES PVT LTD": the text after the numeric reference is the name.
func axisUPIPayee(particulars string) string {
	if m := upiTrailingName.FindStringSubmatch(particulars); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name
		}
	}

	for _, p := range upiPatterns {
		if m := p.FindStringSubmatch(particulars); m != nil {
			captured := strings.TrimSpace(m[1])
			if len(captured) > 1 && !allDigits.MatchString(captured) {
				return captured
			}
		}
	}

	for _, part := range strings.Split(particulars, "/") {
		cleaned := strings.TrimSpace(part)
		if len(cleaned) > 1 && !allDigits.MatchString(cleaned) {
			return cleaned
		}
	}

	return "UPI Payment"
}

// ICICICCPayee extracts a payee label from an ICICI credit-card Details
// field.
func ICICICCPayee(details string) string {
	if details == "" {
		return "Unknown"
	}

	if strings.Contains(details, "UPI-") {
		// Duplicated variant: "UPI-545515394479_UPI-545515394479-SAI FLOW".
		if strings.Contains(details, "_") {
			parts := strings.SplitN(details, "_", 2)
			if len(parts) == 2 {
				if m := upiTrailingName.FindStringSubmatch(parts[1]); m != nil {
					return strings.TrimSpace(m[1])
				}
			}
		}
		if m := upiTrailingName.FindStringSubmatch(details); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	// Merchant strings like "AMAZON PAY INDIA PRIVA, wwwamazonin, IND": the
	// segment before the first comma is the merchant name.
	if idx := strings.Index(details, ","); idx != -1 {
		return strings.TrimSpace(details[:idx])
	}

	return truncateLabel(details, 30)
}

func truncateLabel(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
