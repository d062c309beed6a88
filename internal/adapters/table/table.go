// Package table loads element property tables from tabular storage (CSV or
// YAML) into the immutable alloy.Table the estimation engine consumes.
//
// Loading is deliberately forgiving about cell contents: a numeric cell that
// fails to parse becomes a missing value, not an error. Structural problems
// (absent file, missing required column, duplicate symbol) are errors.
package table

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alloyforge/heapredict/pkg/alloy"
)

// Load reads an element table from path, dispatching on the file extension:
// .yaml/.yml are parsed as YAML, everything else as CSV.
func Load(path string) (alloy.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open element data file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		tbl, err := ParseYAML(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return tbl, nil
	default:
		tbl, err := ParseCSV(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return tbl, nil
	}
}
