package dialect

import (
	"strings"
)

// Probe carries everything a detection rule may inspect: the file name, the
// raw content, and an already-extracted header row when one exists. The
// detector lowercases all of it once so rules stay cheap.
type Probe struct {
	fileName string
	content  string
	header   string // header cells joined with spaces
}

// NewProbe builds a Probe from the raw inputs. header may be nil when no
// table has been extracted yet.
func NewProbe(fileName, content string, header []string) Probe {
	return Probe{
		fileName: strings.ToLower(fileName),
		content:  strings.ToLower(content),
		header:   strings.ToLower(strings.Join(header, " ")),
	}
}

func (p Probe) nameHas(subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(p.fileName, s) {
			return true
		}
	}
	return false
}

func (p Probe) contentHas(subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(p.content, s) {
			return true
		}
	}
	return false
}

func (p Probe) headerHas(subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(p.header, s) {
			return true
		}
	}
	return false
}

// rule pairs a dialect with a pure predicate over the probe. Rules are
// evaluated in order; the first match wins.
type rule struct {
	dialect Dialect
	match   func(Probe) bool
}

var rules = []rule{
	{ICICICC, func(p Probe) bool {
		return p.nameHas("icici") && p.nameHas("credit", "cc") &&
			p.contentHas("view current statement", "view last statement", "transaction details")
	}},
	{AxisBank, func(p Probe) bool {
		return p.nameHas("axis") && p.nameHas("statement", "bank")
	}},
	{AxisBank, func(p Probe) bool {
		return p.headerHas("tran date", "transaction date", "date") &&
			p.headerHas("particulars", "narration") &&
			p.headerHas("withdrawal", "debit", "dr") &&
			p.headerHas("deposit", "credit", "cr")
	}},
	{ICICIBank, func(p Probe) bool {
		return p.headerHas("transaction date") && p.headerHas("description") &&
			p.headerHas("withdrawal amount", "deposit amount")
	}},
	{HDFCCC, func(p Probe) bool {
		return (p.nameHas("hdfc") || p.headerHas("hdfc")) &&
			(p.nameHas("credit", "cc") || p.headerHas("amount(in rs)"))
	}},
}

// Detect classifies a statement. Detection is advisory: the mapper tries the
// detected dialect's mapping first but falls back to every other mapping when
// zero rows come out, so a wrong answer here costs accuracy, not data.
func Detect(fileName, content string, header []string) Dialect {
	p := NewProbe(fileName, content, header)
	for _, r := range rules {
		if r.match(p) {
			return r.dialect
		}
	}
	return Unknown
}
