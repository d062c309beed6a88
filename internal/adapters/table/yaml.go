package table

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alloyforge/heapredict/pkg/alloy"
)

// yamlElement mirrors one entry of the elements list. Pointer fields keep
// "absent" distinct from zero, the same convention the engine uses.
type yamlElement struct {
	Symbol              string   `yaml:"symbol"`
	AtomicMass          *float64 `yaml:"atomic_mass"`
	Density             *float64 `yaml:"density"`
	CrystalStructure    string   `yaml:"crystal_structure"`
	LatticeParameter    *float64 `yaml:"lattice_parameter"`
	ThermalConductivity *float64 `yaml:"thermal_conductivity"`
}

type yamlFile struct {
	Elements []yamlElement `yaml:"elements"`
}

// ParseYAML reads an element property table from a YAML document of the form:
//
//	elements:
//	  - symbol: Fe
//	    atomic_mass: 55.845
//	    density: 7.874
//	    crystal_structure: BCC
//	    lattice_parameter: 2.866
//	    thermal_conductivity: 80.4
//
// Omitted numeric keys become missing values.
func ParseYAML(r io.Reader) (alloy.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Elements) == 0 {
		return nil, fmt.Errorf("element data has no rows")
	}

	tbl := make(alloy.Table, len(file.Elements))
	for _, el := range file.Elements {
		symbol := strings.TrimSpace(el.Symbol)
		if symbol == "" {
			return nil, fmt.Errorf("element entry with empty symbol")
		}
		if _, dup := tbl[symbol]; dup {
			return nil, fmt.Errorf("duplicate element %q in table", symbol)
		}
		tbl[symbol] = alloy.ElementProperties{
			AtomicMass:          el.AtomicMass,
			Density:             el.Density,
			CrystalStructure:    strings.TrimSpace(el.CrystalStructure),
			LatticeParameter:    el.LatticeParameter,
			ThermalConductivity: el.ThermalConductivity,
		}
	}
	return tbl, nil
}
