package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alloyforge/heapredict"
	httpAdapter "github.com/alloyforge/heapredict/internal/adapters/http"
	"github.com/alloyforge/heapredict/internal/logging"
	"github.com/alloyforge/heapredict/internal/presentation/report"
	"github.com/alloyforge/heapredict/pkg/alloy"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	tbl := alloy.Table{
		"Fe": {
			AtomicMass:          alloy.Float(55.845),
			Density:             alloy.Float(7.874),
			CrystalStructure:    "BCC",
			LatticeParameter:    alloy.Float(2.866),
			ThermalConductivity: alloy.Float(80.4),
		},
		"Cr": {
			AtomicMass:          alloy.Float(51.996),
			Density:             alloy.Float(7.19),
			CrystalStructure:    "BCC",
			LatticeParameter:    alloy.Float(2.885),
			ThermalConductivity: alloy.Float(93.9),
		},
	}

	predictor, err := heapredict.New("", heapredict.WithTable(tbl))
	require.NoError(t, err)

	return httpAdapter.NewHandler(predictor, logging.NewNop())
}

func TestPredictEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("Happy Path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"composition":"Fe:0.5,Cr:0.5"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var payload report.Payload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		require.NotNil(t, payload.Density.Value)
		assert.False(t, payload.Density.Failed)
		assert.Equal(t, []string{"BCC"}, payload.LatticeParameter.Structures)
		assert.NotEmpty(t, payload.ThermalConductivity.Note)
	})

	t.Run("Invalid Composition", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"composition":"Fe:2.0"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "between 0 and 1")
	})

	t.Run("Malformed Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown Element Still Returns 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"composition":"Xx:1.0"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		// The composition parses fine; each property reports its own failure.
		require.Equal(t, http.StatusOK, rec.Code)

		var payload report.Payload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.True(t, payload.Density.Failed)
		assert.True(t, payload.LatticeParameter.Failed)
		assert.True(t, payload.ThermalConductivity.Failed)
	})
}

func TestElementsEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/elements", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"symbol":"Cr"`)
	assert.Contains(t, rec.Body.String(), `"symbol":"Fe"`)
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestMetricsExposed(t *testing.T) {
	handler := newTestHandler(t)

	// Generate one prediction so the counters exist.
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"composition":"Fe:1.0"}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	metricsReq := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, metricsReq)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "heapredict_predictions_total")
}
