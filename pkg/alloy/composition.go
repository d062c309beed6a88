package alloy

import (
	"fmt"
	"strconv"
	"strings"
)

// Composition maps a chemical symbol to its atomic fraction. After a
// successful parse every fraction lies in [0, 1] and the fractions sum to
// 1.0 within floating tolerance.
type Composition map[string]float64

// Fractions sums closer to 1.0 than this window are accepted as-is; anything
// outside it is normalized with a warning.
const (
	sumToleranceLow  = 0.999
	sumToleranceHigh = 1.001
)

// ParseComposition parses a composition expression such as
// "Fe:0.2,Co:0.2,Ni:0.2,Cr:0.2,Mn:0.2" into a Composition.
//
// Tokens are comma-separated SYMBOL:FRACTION pairs; whitespace around either
// part is ignored. Fractions must be real numbers in [0, 1] and symbols must
// be unique. When the fractions do not sum to 1.0 within tolerance they are
// divided by their sum and a warning is appended to the returned diagnostics;
// warnings never make the parse fail. An all-zero composition is rejected
// because normalization would divide by zero.
func ParseComposition(text string) (Composition, []string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, ErrEmptyComposition
	}

	comp := make(Composition)
	total := 0.0

	for _, token := range strings.Split(text, ",") {
		symbol, fracText, found := strings.Cut(token, ":")
		if !found {
			return nil, nil, &ParseError{Token: strings.TrimSpace(token), Reason: "expected SYMBOL:FRACTION"}
		}

		symbol = strings.TrimSpace(symbol)
		if symbol == "" {
			return nil, nil, &ParseError{Token: strings.TrimSpace(token), Reason: "element symbol cannot be empty"}
		}

		fraction, err := strconv.ParseFloat(strings.TrimSpace(fracText), 64)
		if err != nil {
			return nil, nil, &ParseError{Token: strings.TrimSpace(token), Reason: fmt.Sprintf("fraction %q is not a number", strings.TrimSpace(fracText))}
		}
		if fraction < 0 || fraction > 1 {
			return nil, nil, &ParseError{Token: symbol, Reason: fmt.Sprintf("fraction for %s (%g) must be between 0 and 1", symbol, fraction)}
		}
		if _, dup := comp[symbol]; dup {
			return nil, nil, &ParseError{Token: symbol, Reason: fmt.Sprintf("duplicate element %q in composition", symbol)}
		}

		comp[symbol] = fraction
		total += fraction
	}

	if total > sumToleranceLow && total < sumToleranceHigh {
		return comp, nil, nil
	}
	if total == 0 {
		return nil, nil, ErrZeroSum
	}

	warning := fmt.Sprintf("input fractions sum to %.4f; they will be normalized", total)
	for symbol, fraction := range comp {
		comp[symbol] = fraction / total
	}
	return comp, []string{warning}, nil
}

// Sum returns the total of all fractions.
func (c Composition) Sum() float64 {
	total := 0.0
	for _, f := range c {
		total += f
	}
	return total
}

// Symbols returns the symbols of the composition in unspecified order.
func (c Composition) Symbols() []string {
	out := make([]string, 0, len(c))
	for s := range c {
		out = append(out, s)
	}
	return out
}
