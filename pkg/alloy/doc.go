/*
Package alloy contains the core estimation engine for high-entropy alloy
property prediction.

It defines the fundamental entities of the calculator: the per-element
property table, the parsed atomic composition, and the estimate records
produced by the three averaging models. This package is kept pure and free
of I/O so it can be embedded in any surface: CLI, HTTP server, or library
use.

# Key Entities

  - ElementProperties: physical constants for one element; missing values
    are explicit (nil pointers), never sentinel numbers.
  - Table: read-only mapping from chemical symbol to ElementProperties.
  - Composition: mapping from symbol to atomic fraction, validated and
    normalized by ParseComposition.
  - Estimate: the outcome of one property calculation — a value or a
    failure, plus any diagnostics accumulated along the way.

# Models

Three independent estimators share the iterate/accumulate/validate shape
but differ deliberately in their skip and validity rules:

  - DensityRoM: rule of mixtures over molar volume (self-renormalizing
    two-sum ratio).
  - LatticeVegard: Vegard's law weighted average; elements with missing
    data are skipped without renormalizing the remaining weights.
  - ConductivityRoM: plain linear average, also without renormalization,
    always flagged as a rough approximation.

A failure in one estimator never affects the others; callers are expected
to run all three and present each result independently.
*/
package alloy
