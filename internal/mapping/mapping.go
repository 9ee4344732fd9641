// Package mapping holds the static per-dialect field mapping registry and
// the column resolution cascade. Mappings are read-only configuration,
// embedded as YAML and validated once at load.
package mapping

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ynab-tools/stmtparse/internal/dialect"
)

//go:embed mappings.yaml
var embeddedMappings []byte

// DateOrder declares which component comes first in a numeric date.
type DateOrder string

const (
	DMY DateOrder = "DMY"
	MDY DateOrder = "MDY"
	YMD DateOrder = "YMD"
)

var validDateOrders = map[DateOrder]struct{}{DMY: {}, MDY: {}, YMD: {}}

// NumberFormat carries locale hints for the amount cleaner.
type NumberFormat struct {
	ThousandsSeparator string `yaml:"thousands_separator"`
	DecimalSeparator   string `yaml:"decimal_separator"`
	TrimInteriorSpaces bool   `yaml:"trim_interior_spaces"`
}

// Mapping declares which logical transaction field lives in which extracted
// column for one dialect. Either AmountField or the Inflow/Outflow pair is
// set, never meaningfully both.
type Mapping struct {
	DateField    string       `yaml:"date_field"`
	PayeeField   string       `yaml:"payee_field"`
	MemoField    string       `yaml:"memo_field"`
	AmountField  string       `yaml:"amount_field"`
	InflowField  string       `yaml:"inflow_field"`
	OutflowField string       `yaml:"outflow_field"`
	DateFormat   DateOrder    `yaml:"date_format"`
	InvertAmount bool         `yaml:"invert_amount"`
	NumberFormat NumberFormat `yaml:"number_format"`
}

type registryFile struct {
	Mappings map[string]Mapping `yaml:"mappings"`
}

// Registry is the immutable dialect → mapping table.
type Registry struct {
	mappings map[dialect.Dialect]Mapping
}

// Load parses and validates a YAML mapping document.
func Load(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse mapping registry: %w", err)
	}
	if len(file.Mappings) == 0 {
		return nil, fmt.Errorf("mapping registry is empty")
	}

	mappings := make(map[dialect.Dialect]Mapping, len(file.Mappings))
	for name, m := range file.Mappings {
		d := dialect.Dialect(name)
		if !dialect.Validate(d) {
			return nil, fmt.Errorf("mapping registry names unknown dialect %q", name)
		}
		if m.DateField == "" {
			return nil, fmt.Errorf("dialect %s: date_field is required", name)
		}
		if m.PayeeField == "" {
			return nil, fmt.Errorf("dialect %s: payee_field is required", name)
		}
		if _, ok := validDateOrders[m.DateFormat]; !ok {
			return nil, fmt.Errorf("dialect %s: invalid date_format %q", name, m.DateFormat)
		}
		if m.AmountField == "" && m.InflowField == "" && m.OutflowField == "" {
			return nil, fmt.Errorf("dialect %s: needs amount_field or inflow/outflow fields", name)
		}
		if m.NumberFormat.ThousandsSeparator == "" {
			m.NumberFormat.ThousandsSeparator = ","
		}
		if m.NumberFormat.DecimalSeparator == "" {
			m.NumberFormat.DecimalSeparator = "."
		}
		mappings[d] = m
	}

	if _, ok := mappings[dialect.Unknown]; !ok {
		return nil, fmt.Errorf("mapping registry must define an Unknown fallback entry")
	}

	return &Registry{mappings: mappings}, nil
}

// LoadEmbedded loads the built-in registry. An error here means the embedded
// document is broken, which a build should never ship.
func LoadEmbedded() (*Registry, error) {
	return Load(embeddedMappings)
}

// Lookup returns the mapping for d, falling back to the Unknown entry when
// the dialect has no mapping of its own.
func (r *Registry) Lookup(d dialect.Dialect) Mapping {
	if m, ok := r.mappings[d]; ok {
		return m
	}
	return r.mappings[dialect.Unknown]
}

// Dialects lists the dialects with an explicit mapping, in the deterministic
// order of dialect.All. The mapper's retry cascade iterates this.
func (r *Registry) Dialects() []dialect.Dialect {
	var out []dialect.Dialect
	for _, d := range dialect.All {
		if _, ok := r.mappings[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// aliases maps canonical logical column names to header spellings seen
// across bank exports. Matching is substring-based and case-insensitive.
var aliases = map[string][]string{
	"tran date":      {"date", "transaction date", "txn date", "trans date", "value date"},
	"particulars":    {"description", "narration", "details", "remarks", "transaction details"},
	"withdrawal amt": {"debit", "debit amount", "dr", "withdrawal", "payment"},
	"deposit amt":    {"credit", "credit amount", "cr", "deposit", "receipt"},
	"chq/ref no":     {"reference", "ref no", "ref number", "ref.no", "cheque no", "chq no"},
}

// ResolveColumn finds the index of a logical column in the header row.
// Resolution cascade: exact match, case-insensitive match, substring match
// in either direction, then the static alias table. Returns -1 when nothing
// resolves.
func ResolveColumn(headers []string, column string) int {
	if column == "" {
		return -1
	}

	for i, h := range headers {
		if strings.TrimSpace(h) == column {
			return i
		}
	}

	lower := strings.ToLower(column)
	for i, h := range headers {
		if strings.ToLower(strings.TrimSpace(h)) == lower {
			return i
		}
	}

	for i, h := range headers {
		hl := strings.ToLower(strings.TrimSpace(h))
		if hl == "" {
			continue
		}
		if strings.Contains(hl, lower) || strings.Contains(lower, hl) {
			return i
		}
	}

	for key, list := range aliases {
		if key != lower && !strings.Contains(key, lower) {
			continue
		}
		for _, alias := range list {
			for i, h := range headers {
				if strings.Contains(strings.ToLower(h), alias) {
					return i
				}
			}
		}
	}

	return -1
}
