/*
Package heapredict estimates basic physical properties of high-entropy
alloys (density, lattice parameter, thermal conductivity) from their atomic
composition, using rule-of-mixtures and Vegard's-law averaging over a table
of per-element physical constants.

The predictions are deliberately simple linear models intended for rapid
screening, not final materials design. Real HEA properties deviate from
these estimates due to phase formation, lattice distortion, electronic
effects, and microstructure.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/alloyforge/heapredict"
	)

	func main() {
		// Empty path selects the bundled element table.
		predictor, err := heapredict.New("")
		if err != nil {
			log.Fatal(err)
		}

		report, err := predictor.Predict("Fe:0.2,Co:0.2,Ni:0.2,Cr:0.2,Mn:0.2")
		if err != nil {
			log.Fatal(err)
		}

		if !report.Density.Failed() {
			fmt.Printf("density: %.3f g/cm³\n", report.Density.Value)
		}
		for _, w := range report.Warnings() {
			fmt.Println("warning:", w)
		}
	}

The three properties are computed independently: a failure in one (for
example, no lattice data for any constituent) never suppresses the others.
Each result carries its own diagnostics so library callers can inspect them
without capturing console output.
*/
package heapredict
