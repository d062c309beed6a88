// Package report turns a prediction into human- and machine-readable
// output: a markdown document for terminals, a plain-text variant for files
// and pipes, and a JSON payload shared by the --json flag and the HTTP API.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alloyforge/heapredict"
)

const failedMarker = "Calculation Failed"

// notes is printed with every report. The models here are screening tools;
// the caveats travel with the numbers.
var notes = []string{
	"These predictions are based on simplified Rule-of-Mixtures / Vegard's Law.",
	"Real HEA properties can deviate significantly due to phase formation, lattice distortion, electronic effects, and microstructure.",
	"Vegard's Law is most applicable when constituents share the same crystal structure.",
	"Thermal conductivity estimates are particularly rough approximations.",
	"Accuracy depends heavily on the quality of the input elemental data.",
	"Use these results for initial screening, not for final design.",
}

// compositionLine renders the normalized fractions in sorted symbol order.
func compositionLine(r *heapredict.Report) string {
	symbols := r.Composition.Symbols()
	sort.Strings(symbols)

	parts := make([]string, 0, len(symbols))
	for _, s := range symbols {
		parts = append(parts, fmt.Sprintf("%s:%.3f", s, r.Composition[s]))
	}
	return strings.Join(parts, ", ")
}

func densityLine(r *heapredict.Report) string {
	if r.Density.Failed() {
		return failedMarker
	}
	return fmt.Sprintf("%.3f g/cm³", r.Density.Value)
}

func latticeLine(r *heapredict.Report) string {
	if r.Lattice.Failed() {
		return failedMarker
	}
	line := fmt.Sprintf("%.4f Å", r.Lattice.Value)
	if len(r.Lattice.Structures) > 0 {
		line += fmt.Sprintf(" (based on structures: %s)", strings.Join(r.Lattice.Structures, ", "))
	} else {
		line += " (structure info missing or mixed)"
	}
	return line
}

func conductivityLine(r *heapredict.Report) string {
	if r.Conductivity.Failed() {
		return failedMarker
	}
	return fmt.Sprintf("%.2f W/m·K", r.Conductivity.Value)
}

// Markdown builds the full prediction report as a markdown document.
func Markdown(r *heapredict.Report) string {
	var b strings.Builder

	b.WriteString("# HEA Property Prediction\n\n")
	fmt.Fprintf(&b, "**Composition (atomic fractions):** %s\n\n", compositionLine(r))
	b.WriteString("## Predicted Properties (approximate)\n\n")
	fmt.Fprintf(&b, "- **Density (RoM):** %s\n", densityLine(r))
	fmt.Fprintf(&b, "- **Lattice Parameter (Vegard):** %s\n", latticeLine(r))
	fmt.Fprintf(&b, "- **Thermal Conductivity (RoM):** %s\n\n", conductivityLine(r))
	b.WriteString("## Important Notes\n\n")
	for _, n := range notes {
		fmt.Fprintf(&b, "- %s\n", n)
	}

	return b.String()
}

// Text builds the report as plain text, suitable for --output files and
// non-terminal stdout.
func Text(r *heapredict.Report) string {
	var b strings.Builder

	b.WriteString("--- HEA Property Prediction Results ---\n")
	fmt.Fprintf(&b, "Composition (atomic fractions): %s\n", compositionLine(r))
	b.WriteString(strings.Repeat("-", 39) + "\n")
	b.WriteString("Predicted Properties (approximate):\n")
	fmt.Fprintf(&b, "  Density (RoM):              %s\n", densityLine(r))
	fmt.Fprintf(&b, "  Lattice Parameter (Vegard): %s\n", latticeLine(r))
	fmt.Fprintf(&b, "  Thermal Conductivity (RoM): %s\n", conductivityLine(r))
	b.WriteString(strings.Repeat("-", 39) + "\n")
	b.WriteString("IMPORTANT NOTES:\n")
	for _, n := range notes {
		fmt.Fprintf(&b, " - %s\n", n)
	}

	return b.String()
}
