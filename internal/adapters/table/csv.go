package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alloyforge/heapredict/pkg/alloy"
)

// Column names expected in the header row. Order is free and unknown extra
// columns are ignored.
const (
	colSymbol       = "Symbol"
	colAtomicMass   = "AtomicMass_amu"
	colDensity      = "Density_g_cm3"
	colStructure    = "CrystalStructure"
	colLattice      = "LatticeParameter_a_A"
	colConductivity = "ThermalConductivity_W_mK"
)

var requiredColumns = []string{
	colSymbol, colAtomicMass, colDensity, colStructure, colLattice, colConductivity,
}

// ParseCSV reads an element property table in CSV form. The first
// non-comment row must be a header naming all required columns; lines
// starting with '#' are skipped. A numeric cell that is empty or does not
// parse yields a missing value for that field.
func ParseCSV(r io.Reader) (alloy.Table, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("element data is empty")
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missingCols []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missingCols = append(missingCols, name)
		}
	}
	if len(missingCols) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missingCols, ", "))
	}

	tbl := make(alloy.Table)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		symbol := strings.TrimSpace(record[index[colSymbol]])
		if symbol == "" {
			return nil, fmt.Errorf("row with empty element symbol")
		}
		if _, dup := tbl[symbol]; dup {
			return nil, fmt.Errorf("duplicate element %q in table", symbol)
		}

		tbl[symbol] = alloy.ElementProperties{
			AtomicMass:          parseCell(record[index[colAtomicMass]]),
			Density:             parseCell(record[index[colDensity]]),
			CrystalStructure:    strings.TrimSpace(record[index[colStructure]]),
			LatticeParameter:    parseCell(record[index[colLattice]]),
			ThermalConductivity: parseCell(record[index[colConductivity]]),
		}
	}

	if len(tbl) == 0 {
		return nil, fmt.Errorf("element data has no rows")
	}
	return tbl, nil
}

// parseCell converts a numeric cell to an optional float. Unparseable
// content is missing data, not an error, mirroring how sparse reference
// tables are published.
func parseCell(cell string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return nil
	}
	return alloy.Float(v)
}
