package alloy

import (
	"fmt"
	"sort"
	"strings"
)

// Estimate is the outcome of a single property calculation. Err is non-nil
// when the property could not be computed at all; Warnings carry
// degraded-confidence diagnostics and never imply failure on their own.
// Structures is populated only by LatticeVegard. Note holds a fixed
// methodology caveat, kept apart from the data-quality warnings.
//
// Each call to an estimator produces a fresh Estimate; nothing is shared or
// mutated after return.
type Estimate struct {
	Value      float64
	Structures []string
	Warnings   []string
	Note       string
	Err        error
}

// Failed reports whether the calculation produced no value.
func (e Estimate) Failed() bool { return e.Err != nil }

// ConductivityCaution is attached to every successful thermal conductivity
// estimate. A linear average ignores phonon and electron scattering, which
// dominate in concentrated alloys, so the number is a rough bound at best.
const ConductivityCaution = "thermal conductivity uses a simple linear average (Σ xᵢ·kᵢ), which is a very rough estimate for alloys and ignores scattering effects"

// orderedSymbols returns the composition's symbols sorted so that warnings
// and accumulation order are deterministic across runs.
func orderedSymbols(c Composition) []string {
	symbols := c.Symbols()
	sort.Strings(symbols)
	return symbols
}

// DensityRoM estimates density in g/cm³ with a rule of mixtures over molar
// volume: ρ = Σ(xᵢ·Mᵢ) / Σ(xᵢ·Mᵢ/ρᵢ).
//
// Elements missing atomic mass or density are skipped with a warning and
// contribute to neither sum, as are elements with a non-positive density.
// Because both sums drop the same elements, the ratio is effectively
// renormalized over the elements that remain. An element absent from the
// table entirely is a hard failure.
func DensityRoM(c Composition, tbl Table) Estimate {
	var est Estimate
	var totalMolarVolume, totalMolarMass float64
	var missing []string

	for _, symbol := range orderedSymbols(c) {
		props, ok := tbl.Lookup(symbol)
		if !ok {
			est.Err = &ElementNotFoundError{Symbol: symbol}
			return est
		}

		if props.AtomicMass == nil || props.Density == nil {
			missing = append(missing, symbol+" (mass or density)")
			continue
		}
		if *props.Density <= 0 {
			est.Warnings = append(est.Warnings, fmt.Sprintf("density for element %s is non-positive (%g); skipping its contribution", symbol, *props.Density))
			continue
		}

		molarVolume := *props.AtomicMass / *props.Density // cm³/mol
		fraction := c[symbol]
		totalMolarVolume += fraction * molarVolume
		totalMolarMass += fraction * *props.AtomicMass
	}

	if len(missing) > 0 {
		est.Warnings = append(est.Warnings, fmt.Sprintf("missing atomic mass or density data for: %s; density prediction may be inaccurate", strings.Join(missing, ", ")))
	}

	if totalMolarVolume <= 0 {
		est.Err = fmt.Errorf("calculated total molar volume is non-positive (%.4f)", totalMolarVolume)
		return est
	}
	if totalMolarMass <= 0 {
		est.Err = fmt.Errorf("calculated total molar mass is non-positive (%.4f)", totalMolarMass)
		return est
	}

	est.Value = totalMolarMass / totalMolarVolume
	return est
}

// LatticeVegard estimates the lattice parameter in Å with Vegard's law:
// a = Σ(xᵢ·aᵢ) over elements that carry a positive lattice parameter.
//
// Skipped elements do not have their weight redistributed; the partial sum
// is returned as-is. Crystal structure labels of contributing elements are
// collected (uppercased) into Structures; a mixed or empty set is flagged
// because Vegard's law only really holds within a single structure.
func LatticeVegard(c Composition, tbl Table) Estimate {
	var est Estimate
	structures := make(map[string]struct{})
	contributing := 0
	var missing []string

	for _, symbol := range orderedSymbols(c) {
		props, ok := tbl.Lookup(symbol)
		if !ok {
			est.Err = &ElementNotFoundError{Symbol: symbol}
			return est
		}

		if props.LatticeParameter == nil || *props.LatticeParameter <= 0 {
			missing = append(missing, symbol+" (lattice param)")
			continue
		}

		est.Value += c[symbol] * *props.LatticeParameter
		if props.CrystalStructure != "" {
			structures[strings.ToUpper(props.CrystalStructure)] = struct{}{}
		} else {
			missing = append(missing, symbol+" (structure)")
		}
		contributing++
	}

	if len(missing) > 0 {
		est.Warnings = append(est.Warnings, fmt.Sprintf("missing or invalid lattice parameter/structure data for: %s; lattice parameter prediction may be inaccurate", strings.Join(missing, ", ")))
	}

	if contributing == 0 {
		return Estimate{Warnings: est.Warnings, Err: ErrNoLatticeData}
	}

	for s := range structures {
		est.Structures = append(est.Structures, s)
	}
	sort.Strings(est.Structures)

	if len(est.Structures) > 1 {
		est.Warnings = append(est.Warnings, fmt.Sprintf("constituent elements have different crystal structures (%s); Vegard's law is physically less meaningful for such a mix", strings.Join(est.Structures, ", ")))
	} else if len(est.Structures) == 0 {
		est.Warnings = append(est.Warnings, "crystal structures for contributing elements are undefined in the data; Vegard's law applicability is unknown")
	}

	return est
}

// ConductivityRoM estimates thermal conductivity in W/m·K as the plain
// linear average Σ(xᵢ·kᵢ) over elements with conductivity data. As with
// LatticeVegard, skipped elements are not renormalized away. Every
// successful estimate carries ConductivityCaution in its Note field, apart
// from any data-quality warnings.
func ConductivityRoM(c Composition, tbl Table) Estimate {
	var est Estimate
	contributing := 0
	var missing []string

	for _, symbol := range orderedSymbols(c) {
		props, ok := tbl.Lookup(symbol)
		if !ok {
			est.Err = &ElementNotFoundError{Symbol: symbol}
			return est
		}

		if props.ThermalConductivity == nil {
			missing = append(missing, symbol+" (conductivity)")
			continue
		}

		est.Value += c[symbol] * *props.ThermalConductivity
		contributing++
	}

	if len(missing) > 0 {
		est.Warnings = append(est.Warnings, fmt.Sprintf("missing thermal conductivity data for: %s; prediction may be inaccurate", strings.Join(missing, ", ")))
	}

	if contributing == 0 {
		return Estimate{Warnings: est.Warnings, Err: ErrNoConductivityData}
	}

	est.Note = ConductivityCaution
	return est
}
