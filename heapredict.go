package heapredict

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alloyforge/heapredict/internal/adapters/table"
	"github.com/alloyforge/heapredict/pkg/alloy"
)

// Version of the heapredict module.
var Version = "0.2.0"

// Predictor is the high-level entry point for the heapredict library. It
// holds an immutable element table and is safe for concurrent use; every
// Predict call is independent.
type Predictor struct {
	table  alloy.Table
	logger *slog.Logger
}

// Option defines a functional option for configuring the Predictor.
type Option func(*Predictor)

// WithTable injects an already-built element table, bypassing file loading.
func WithTable(tbl alloy.Table) Option {
	return func(p *Predictor) {
		p.table = tbl
	}
}

// WithLogger sets a custom structured logger. Diagnostics emitted during
// prediction are logged as warnings in addition to being returned.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Predictor) {
		p.logger = logger
	}
}

// New initializes a Predictor. tablePath names a CSV or YAML element data
// file; an empty path selects the table bundled with the module. A table
// injected via WithTable takes precedence over both.
func New(tablePath string, opts ...Option) (*Predictor, error) {
	p := &Predictor{}

	for _, opt := range opts {
		opt(p)
	}

	if p.table == nil {
		var err error
		if tablePath == "" {
			p.table, err = table.Default()
		} else {
			p.table, err = table.Load(tablePath)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load element data: %w", err)
		}
	}

	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return p, nil
}

// Table returns the element table the predictor consults.
func (p *Predictor) Table() alloy.Table {
	return p.table
}

// Report bundles the outcome of one prediction: the normalized composition,
// any parse diagnostics, and the three independent property estimates.
type Report struct {
	Composition   alloy.Composition
	ParseWarnings []string
	Density       alloy.Estimate
	Lattice       alloy.Estimate
	Conductivity  alloy.Estimate
}

// Warnings returns every diagnostic accumulated during parsing and
// estimation, in computation order. Property failures are not included;
// inspect the individual estimates for those.
func (r *Report) Warnings() []string {
	var out []string
	out = append(out, r.ParseWarnings...)
	out = append(out, r.Density.Warnings...)
	out = append(out, r.Lattice.Warnings...)
	out = append(out, r.Conductivity.Warnings...)
	return out
}

// Predict parses a composition expression and runs all three property
// estimators against the predictor's table. It returns an error only when
// the composition itself cannot be parsed; individual property failures are
// recorded in the corresponding Estimate and never abort the others.
func (p *Predictor) Predict(composition string) (*Report, error) {
	comp, parseWarnings, err := alloy.ParseComposition(composition)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Composition:   comp,
		ParseWarnings: parseWarnings,
		Density:       alloy.DensityRoM(comp, p.table),
		Lattice:       alloy.LatticeVegard(comp, p.table),
		Conductivity:  alloy.ConductivityRoM(comp, p.table),
	}

	for _, w := range report.Warnings() {
		p.logger.Warn(w)
	}
	for name, est := range map[string]alloy.Estimate{
		"density":              report.Density,
		"lattice_parameter":    report.Lattice,
		"thermal_conductivity": report.Conductivity,
	} {
		if est.Failed() {
			p.logger.Error("calculation failed", "property", name, "err", est.Err)
		}
	}

	return report, nil
}
