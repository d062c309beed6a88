package report

import (
	"github.com/alloyforge/heapredict"
	"github.com/alloyforge/heapredict/pkg/alloy"
)

// Property is the machine-readable form of one estimate. Value is nil when
// the calculation failed.
type Property struct {
	Value      *float64 `json:"value,omitempty"`
	Structures []string `json:"structures,omitempty"`
	Note       string   `json:"note,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
	Error      string   `json:"error,omitempty"`
	Failed     bool     `json:"failed"`
}

// Payload is the machine-readable form of a full prediction, shared by the
// CLI --json flag and the HTTP API.
type Payload struct {
	Composition         map[string]float64 `json:"composition"`
	Density             Property           `json:"density"`
	LatticeParameter    Property           `json:"lattice_parameter"`
	ThermalConductivity Property           `json:"thermal_conductivity"`
	Warnings            []string           `json:"warnings,omitempty"`
}

func property(est alloy.Estimate) Property {
	p := Property{
		Structures: est.Structures,
		Note:       est.Note,
		Warnings:   est.Warnings,
		Failed:     est.Failed(),
	}
	if est.Failed() {
		p.Error = est.Err.Error()
	} else {
		v := est.Value
		p.Value = &v
	}
	return p
}

// NewPayload converts a Report into its wire form.
func NewPayload(r *heapredict.Report) Payload {
	return Payload{
		Composition:         r.Composition,
		Density:             property(r.Density),
		LatticeParameter:    property(r.Lattice),
		ThermalConductivity: property(r.Conductivity),
		Warnings:            r.ParseWarnings,
	}
}
