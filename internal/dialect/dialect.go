// Package dialect identifies which bank statement convention a file uses.
package dialect

// Dialect is one bank/card issuer's statement export convention.
// The set is closed; use Validate before trusting external input.
type Dialect string

const (
	ICICIBank Dialect = "ICICI_Bank"
	ICICICC   Dialect = "ICICI_CC"
	AxisBank  Dialect = "Axis_Bank"
	AxisCC    Dialect = "Axis_CC"
	HDFCCC    Dialect = "HDFC_CC"
	Unknown   Dialect = "Unknown"
)

// All lists every known dialect in deterministic order. The mapper's retry
// cascade iterates this slice, so the order is part of observable behavior.
var All = []Dialect{ICICIBank, ICICICC, AxisBank, AxisCC, HDFCCC, Unknown}

var valid = map[Dialect]struct{}{
	ICICIBank: {}, ICICICC: {}, AxisBank: {}, AxisCC: {}, HDFCCC: {}, Unknown: {},
}

// Validate reports whether d is a member of the closed dialect set.
func Validate(d Dialect) bool {
	_, ok := valid[d]
	return ok
}
