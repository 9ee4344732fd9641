package segment

import (
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "unix newlines",
			text: "a\nb\nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "windows newlines",
			text: "a\r\nb\r\nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "old mac newlines",
			text: "a\rb\rc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "blank and whitespace-only lines dropped",
			text: "a\n\n   \n\t\nb",
			want: []string{"a", "b"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Lines() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Lines()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want rune
	}{
		{"comma", "a,b,c\n1,2,3", ','},
		{"semicolon", "a;b;c;d", ';'},
		{"tab", "a\tb\tc", '\t'},
		{"pipe", "a|b|c|d|e", '|'},
		{"defaults to comma", "no delimiters here", ','},
		{"empty input defaults to comma", "", ','},
		{"quoted-adjacent delimiters ignored", `"a","b";x;y;z`, ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDelimiter(tt.text); got != tt.want {
				t.Errorf("DetectDelimiter(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Detection must be total: any input yields one of the four candidates.
func TestDetectDelimiter_Total(t *testing.T) {
	inputs := []string{
		"", "\n", "\x00\x01\x02", strings.Repeat(`"`, 100),
		"just words", ",;|\t", "a,b;c|d\te",
	}
	valid := map[rune]bool{',': true, ';': true, '\t': true, '|': true}

	for _, in := range inputs {
		if got := DetectDelimiter(in); !valid[got] {
			t.Errorf("DetectDelimiter(%q) = %q, not a candidate delimiter", in, got)
		}
	}
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{
			name:  "plain fields",
			line:  "a,b,c",
			delim: ',',
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "quoted delimiter is literal",
			line:  `"AMAZON PAY, INDIA",500.00`,
			delim: ',',
			want:  []string{"AMAZON PAY, INDIA", "500.00"},
		},
		{
			name:  "surrounding quotes stripped",
			line:  `"a","b"`,
			delim: ',',
			want:  []string{"a", "b"},
		},
		{
			name:  "fields trimmed",
			line:  "  a , b ,  4439.59 ",
			delim: ',',
			want:  []string{"a", "b", "4439.59"},
		},
		{
			name:  "empty fields preserved",
			line:  "a,,c,",
			delim: ',',
			want:  []string{"a", "", "c", ""},
		},
		{
			name:  "no delimiter yields single field",
			line:  "just one value",
			delim: ',',
			want:  []string{"just one value"},
		},
		{
			name:  "unterminated quote never fails",
			line:  `"a,b,c`,
			delim: ',',
			want:  []string{`"a,b,c`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitFields(tt.line, tt.delim)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitFields() = %#v, want %#v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitFields()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
