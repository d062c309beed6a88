package alloy

import "strings"

// ElementProperties holds the physical constants for a single element.
// Numeric fields are pointers: nil means the value is missing from the
// source table, which is distinct from a value of zero. CrystalStructure is
// a free-text label ("BCC", "FCC", "HCP", ...); empty means unknown.
//
// Records are immutable once built and are shared by reference across
// concurrent estimations.
type ElementProperties struct {
	AtomicMass          *float64 // g/mol
	Density             *float64 // g/cm³
	CrystalStructure    string
	LatticeParameter    *float64 // Å
	ThermalConductivity *float64 // W/m·K
}

// Table maps a trimmed, case-preserved chemical symbol to its properties.
// The engine only reads from it; construction and ownership belong to the
// caller (see internal/adapters/table for the file-backed loaders).
type Table map[string]ElementProperties

// Lookup returns the properties for symbol. The second return is false when
// the symbol is not present in the table.
func (t Table) Lookup(symbol string) (ElementProperties, bool) {
	p, ok := t[strings.TrimSpace(symbol)]
	return p, ok
}

// Symbols returns every symbol present in the table, unordered.
func (t Table) Symbols() []string {
	out := make([]string, 0, len(t))
	for s := range t {
		out = append(out, s)
	}
	return out
}

// Float is a convenience constructor for optional numeric fields.
func Float(v float64) *float64 { return &v }
