package normalize

import (
	"strings"
	"testing"
)

func TestSanitizePayee(t *testing.T) {
	tests := []struct {
		name  string
		payee string
		want  string
	}{
		{"safe characters pass through", "CRED(RAZORPAY)", "CRED(RAZORPAY)"},
		{"allowed punctuation kept", "M&S Retail, Ltd. @home", "M&S Retail, Ltd. @home"},
		{"currency symbol replaced", "CAFE ₹ COFFEE", "CAFE COFFEE"},
		{"accents folded to base letters", "Café Münchén", "Cafe Munchen"},
		{"repeated whitespace collapsed", "A   B\t\tC", "A B C"},
		{"empty becomes Unknown", "", "Unknown"},
		{"all-unsafe becomes Unknown", "✓✓✓", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizePayee(tt.payee); got != tt.want {
				t.Errorf("SanitizePayee(%q) = %q, want %q", tt.payee, got, tt.want)
			}
		})
	}
}

func TestSanitizePayee_Truncation(t *testing.T) {
	long := strings.Repeat("A", MaxPayeeLen+50)
	got := SanitizePayee(long)
	if len(got) != MaxPayeeLen {
		t.Fatalf("len = %d, want %d", len(got), MaxPayeeLen)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated payee %q missing ellipsis", got)
	}
}

func TestSanitizeMemo(t *testing.T) {
	if got := SanitizeMemo(""); got != "" {
		t.Errorf("SanitizeMemo(empty) = %q, want empty", got)
	}
	if got := SanitizeMemo("Ref: 12345 / IMPS"); got != "Ref 12345 IMPS" {
		t.Errorf("SanitizeMemo() = %q", got)
	}

	long := strings.Repeat("m", MaxMemoLen*2)
	if got := SanitizeMemo(long); len(got) != MaxMemoLen {
		t.Errorf("truncated memo len = %d, want %d", len(got), MaxMemoLen)
	}
}
