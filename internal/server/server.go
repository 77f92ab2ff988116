// Package server exposes the projection engine over a small HTTP JSON API.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/buy-vs-lease/internal/config"
	"github.com/iwvelando/buy-vs-lease/internal/metrics"
	"github.com/iwvelando/buy-vs-lease/internal/projection"
	"github.com/iwvelando/buy-vs-lease/pkg/constants"
	"github.com/iwvelando/buy-vs-lease/pkg/formulas"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the projection API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Projection API endpoint (YAML parameter upload)
	mux.HandleFunc("/api/projection", h.handleProjection)

	// Vehicle archetype catalog
	mux.HandleFunc("/api/presets", h.handlePresets)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

type projectionResponse struct {
	Results  projection.CalculationResults `json:"results"`
	Formulas formulas.Formulas             `json:"formulas"`
	Warnings []string                      `json:"warnings,omitempty"`
	Duration string                        `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleProjection accepts a YAML body of buy/lease/projection parameters,
// merged over the stock defaults and optionally a preset selected with the
// "preset" query parameter, and returns the full projection as JSON.
func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxUploadSize+1))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if int64(len(body)) > h.maxUploadSize {
		h.writeError(w, http.StatusRequestEntityTooLarge, errors.New("request body exceeds upload limit"))
		return
	}

	conf, err := config.DefaultConfiguration()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}

	if presetID := r.URL.Query().Get("preset"); presetID != "" {
		preset, ok := config.GetPreset(presetID)
		if !ok {
			h.writeError(w, http.StatusBadRequest, errors.New("unknown preset "+presetID))
			return
		}
		conf.ApplyPreset(preset)
	}

	if len(body) > 0 {
		if err := yaml.Unmarshal(body, conf); err != nil {
			h.writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	warnings := conf.ValidateConfiguration()

	buy := conf.BuyParameters()
	lease := conf.LeaseParameters()
	settings := conf.ProjectionSettings()

	start := time.Now()
	results := projection.Run(h.logger, buy, lease, settings)
	elapsed := time.Since(start)

	metrics.ProjectionRequests.WithLabelValues("api", "success").Inc()
	metrics.ProjectionDuration.Observe(elapsed.Seconds())

	h.logger.Debug("computed projection",
		zap.String("op", "server.handleProjection"),
		zap.Int("years", results.ProjectionYears),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, projectionResponse{
		Results:  results,
		Formulas: formulas.Describe(buy, lease, results.Preliminary),
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

func (h *handler) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"presets": config.Presets(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, err error) {
	metrics.ProjectionRequests.WithLabelValues("api", "error").Inc()
	h.logger.Warn("request failed",
		zap.String("op", "server.writeError"),
		zap.Int("status", status),
		zap.Error(err),
	)
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
