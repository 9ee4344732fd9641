package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynab-tools/stmtparse/internal/dialect"
)

func TestLoadEmbedded(t *testing.T) {
	reg, err := LoadEmbedded()
	require.NoError(t, err, "embedded registry must always load")

	// Every known dialect has an explicit entry.
	ds := reg.Dialects()
	assert.Len(t, ds, len(dialect.All))

	axis := reg.Lookup(dialect.AxisBank)
	assert.Equal(t, "Tran Date", axis.DateField)
	assert.Equal(t, "PARTICULARS", axis.PayeeField)
	assert.Equal(t, DMY, axis.DateFormat)
	assert.True(t, axis.NumberFormat.TrimInteriorSpaces)
	assert.False(t, axis.InvertAmount)

	cc := reg.Lookup(dialect.ICICICC)
	assert.Equal(t, "Amount (INR)", cc.AmountField)

	hdfc := reg.Lookup(dialect.HDFCCC)
	assert.True(t, hdfc.InvertAmount, "card dialects treat positive amounts as spend")
}

func TestLookupFallsBackToUnknown(t *testing.T) {
	reg, err := LoadEmbedded()
	require.NoError(t, err)

	unknown := reg.Lookup(dialect.Unknown)
	got := reg.Lookup(dialect.Dialect("Never_Registered"))
	assert.Equal(t, unknown, got)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", ":::not yaml"},
		{"empty registry", "mappings: {}"},
		{
			"unknown dialect name",
			`
mappings:
  SBI_Bank:
    date_field: Date
    payee_field: Description
    amount_field: Amount
    date_format: DMY
`,
		},
		{
			"missing date field",
			`
mappings:
  Unknown:
    payee_field: Description
    amount_field: Amount
    date_format: DMY
`,
		},
		{
			"bad date format",
			`
mappings:
  Unknown:
    date_field: Date
    payee_field: Description
    amount_field: Amount
    date_format: XYZ
`,
		},
		{
			"no amount fields at all",
			`
mappings:
  Unknown:
    date_field: Date
    payee_field: Description
    date_format: DMY
`,
		},
		{
			"missing the Unknown fallback",
			`
mappings:
  Axis_Bank:
    date_field: Tran Date
    payee_field: PARTICULARS
    amount_field: Amount
    date_format: DMY
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadDefaultsSeparators(t *testing.T) {
	reg, err := Load([]byte(`
mappings:
  Unknown:
    date_field: Date
    payee_field: Description
    amount_field: Amount
    date_format: DMY
`))
	require.NoError(t, err)

	nf := reg.Lookup(dialect.Unknown).NumberFormat
	assert.Equal(t, ",", nf.ThousandsSeparator)
	assert.Equal(t, ".", nf.DecimalSeparator)
}

func TestResolveColumn(t *testing.T) {
	headers := []string{"Tran Date", "CHQNO", "PARTICULARS", "DR", "CR", "BAL"}

	tests := []struct {
		name   string
		column string
		want   int
	}{
		{"exact", "Tran Date", 0},
		{"case insensitive", "particulars", 2},
		{"column contains header", "DR Amount", 3},
		{"header contains column", "BAL", 5},
		{"unresolvable", "Settlement Currency", -1},
		{"empty column never resolves", "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColumn(headers, tt.column); got != tt.want {
				t.Errorf("ResolveColumn(%q) = %d, want %d", tt.column, got, tt.want)
			}
		})
	}
}

func TestResolveColumnAliases(t *testing.T) {
	headers := []string{"Value Date", "Narration", "Ref No", "Debit", "Credit"}

	tests := []struct {
		column string
		want   int
	}{
		{"Tran Date", 0},     // alias list: value date
		{"PARTICULARS", 1},   // alias list: narration
		{"CHQ/REF NO", 2},    // alias list: ref no
		{"Withdrawal Amt", 3},
		{"Deposit Amt", 4},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			if got := ResolveColumn(headers, tt.column); got != tt.want {
				t.Errorf("ResolveColumn(%q) = %d, want %d", tt.column, got, tt.want)
			}
		})
	}
}
