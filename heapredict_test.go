package heapredict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alloyforge/heapredict"
	"github.com/alloyforge/heapredict/pkg/alloy"
)

// cantorTable provides complete data for the Cantor alloy constituents with
// a single shared crystal structure, so a clean run emits no warnings.
func cantorTable() alloy.Table {
	tbl := make(alloy.Table)
	for symbol, m := range map[string][4]float64{
		// mass, density, lattice, conductivity
		"Fe": {55.845, 7.874, 2.866, 80.4},
		"Co": {58.933, 8.86, 2.507, 100.0},
		"Ni": {58.693, 8.908, 3.524, 90.9},
		"Cr": {51.996, 7.19, 2.885, 93.9},
		"Mn": {54.938, 7.21, 8.912, 7.81},
	} {
		tbl[symbol] = alloy.ElementProperties{
			AtomicMass:          alloy.Float(m[0]),
			Density:             alloy.Float(m[1]),
			CrystalStructure:    "FCC",
			LatticeParameter:    alloy.Float(m[2]),
			ThermalConductivity: alloy.Float(m[3]),
		}
	}
	return tbl
}

func TestPredict(t *testing.T) {
	t.Run("Cantor Alloy End To End", func(t *testing.T) {
		predictor, err := heapredict.New("", heapredict.WithTable(cantorTable()))
		require.NoError(t, err)

		report, err := predictor.Predict("Fe:0.2,Co:0.2,Ni:0.2,Cr:0.2,Mn:0.2")
		require.NoError(t, err)

		assert.NoError(t, report.Density.Err)
		assert.NoError(t, report.Lattice.Err)
		assert.NoError(t, report.Conductivity.Err)
		assert.Empty(t, report.Warnings())
		assert.Equal(t, []string{"FCC"}, report.Lattice.Structures)
		assert.Equal(t, alloy.ConductivityCaution, report.Conductivity.Note)
		assert.Greater(t, report.Density.Value, 0.0)
	})

	t.Run("Bundled Table", func(t *testing.T) {
		predictor, err := heapredict.New("")
		require.NoError(t, err)

		report, err := predictor.Predict("Fe:0.5,Cr:0.5")
		require.NoError(t, err)
		assert.NoError(t, report.Density.Err)
		assert.NoError(t, report.Lattice.Err)
		assert.NoError(t, report.Conductivity.Err)
	})

	t.Run("Parse Failure", func(t *testing.T) {
		predictor, err := heapredict.New("", heapredict.WithTable(cantorTable()))
		require.NoError(t, err)

		_, err = predictor.Predict("Fe:2.0")
		assert.Error(t, err)
	})

	t.Run("Unknown Element Fails All Three But Returns A Report", func(t *testing.T) {
		predictor, err := heapredict.New("", heapredict.WithTable(cantorTable()))
		require.NoError(t, err)

		report, err := predictor.Predict("Fe:0.5,Xx:0.5")
		require.NoError(t, err)

		var notFound *alloy.ElementNotFoundError
		assert.ErrorAs(t, report.Density.Err, &notFound)
		assert.ErrorAs(t, report.Lattice.Err, &notFound)
		assert.ErrorAs(t, report.Conductivity.Err, &notFound)
	})

	t.Run("Normalization Warning Propagates", func(t *testing.T) {
		predictor, err := heapredict.New("", heapredict.WithTable(cantorTable()))
		require.NoError(t, err)

		report, err := predictor.Predict("Fe:0.5,Ni:0.6")
		require.NoError(t, err)
		require.Len(t, report.ParseWarnings, 1)
		assert.Contains(t, report.Warnings()[0], "normalized")
		assert.InDelta(t, 1.0, report.Composition.Sum(), 1e-9)
	})

	t.Run("Missing Table File", func(t *testing.T) {
		_, err := heapredict.New("does/not/exist.csv")
		assert.Error(t, err)
	})
}
