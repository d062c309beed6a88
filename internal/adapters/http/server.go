// Package http exposes the prediction engine as a small JSON API for serve
// mode, with prometheus instrumentation on the prediction path.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alloyforge/heapredict"
	"github.com/alloyforge/heapredict/internal/presentation/report"
)

// Server wires the predictor into HTTP handlers.
type Server struct {
	predictor *heapredict.Predictor
	logger    *slog.Logger

	predictions *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewHandler builds the serve-mode router:
//
//	POST /predict   {"composition": "Fe:0.2,..."} -> prediction payload
//	GET  /elements  known element table
//	GET  /healthz   liveness
//	GET  /metrics   prometheus metrics
func NewHandler(predictor *heapredict.Predictor, logger *slog.Logger) http.Handler {
	registry := prometheus.NewRegistry()

	s := &Server{
		predictor: predictor,
		logger:    logger,
		predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "heapredict_predictions_total",
				Help: "Property calculations by outcome",
			},
			[]string{"property", "outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "heapredict_prediction_duration_seconds",
				Help: "Duration of full prediction requests",
			},
		),
	}
	registry.MustRegister(s.predictions, s.duration)

	r := chi.NewRouter()
	r.Get("/healthz", s.healthz)
	r.Get("/elements", s.elements)
	r.Post("/predict", s.predict)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return r
}

type predictRequest struct {
	Composition string `json:"composition"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) predict(w http.ResponseWriter, r *http.Request) {
	var body predictRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	start := time.Now()
	rep, err := s.predictor.Predict(body.Composition)
	if err != nil {
		s.logger.Warn("rejected composition", "err", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.duration.Observe(time.Since(start).Seconds())

	for property, failed := range map[string]bool{
		"density":              rep.Density.Failed(),
		"lattice_parameter":    rep.Lattice.Failed(),
		"thermal_conductivity": rep.Conductivity.Failed(),
	} {
		outcome := "success"
		if failed {
			outcome = "failure"
		}
		s.predictions.WithLabelValues(property, outcome).Inc()
	}

	writeJSON(w, http.StatusOK, report.NewPayload(rep))
}

// elementEntry describes one table row over the wire; nil fields are absent
// from the source data.
type elementEntry struct {
	Symbol              string   `json:"symbol"`
	AtomicMass          *float64 `json:"atomic_mass,omitempty"`
	Density             *float64 `json:"density,omitempty"`
	CrystalStructure    string   `json:"crystal_structure,omitempty"`
	LatticeParameter    *float64 `json:"lattice_parameter,omitempty"`
	ThermalConductivity *float64 `json:"thermal_conductivity,omitempty"`
}

func (s *Server) elements(w http.ResponseWriter, r *http.Request) {
	tbl := s.predictor.Table()
	symbols := tbl.Symbols()
	sort.Strings(symbols)

	entries := make([]elementEntry, 0, len(symbols))
	for _, symbol := range symbols {
		props, _ := tbl.Lookup(symbol)
		entries = append(entries, elementEntry{
			Symbol:              symbol,
			AtomicMass:          props.AtomicMass,
			Density:             props.Density,
			CrystalStructure:    props.CrystalStructure,
			LatticeParameter:    props.LatticeParameter,
			ThermalConductivity: props.ThermalConductivity,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"elements": entries})
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": heapredict.Version,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
