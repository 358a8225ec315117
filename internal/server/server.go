// Package server serves the ROI calculator page and its JSON API.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/iwvelando/roi-calculator/internal/calculator"
	"github.com/iwvelando/roi-calculator/pkg/format"
	"go.uber.org/zap"
)

//go:embed templates/*.html static/*
var assets embed.FS

type handler struct {
	logger  *zap.Logger
	view    *viewEngine
	version string
}

// NewHandler constructs the HTTP handler that serves the calculator page and API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	view, err := newViewEngine()
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded templates: %v", err))
	}

	h := &handler{logger: logger, view: view, version: trimmedVersion}

	r := chi.NewRouter()
	for _, mw := range middlewareStack(logger, cfg) {
		r.Use(mw)
	}

	r.Get("/", h.handlePage)
	r.Post("/", h.handlePage)

	r.Route("/api", func(r chi.Router) {
		r.Post("/edit", h.handleEdit)
		r.Post("/metrics", h.handleMetrics)
		r.Get("/version", h.handleVersion)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r
}

type editRequest struct {
	Fields map[string]string `json:"fields"`
	Field  string            `json:"field"`
	Value  string            `json:"value"`
}

type metricsRequest struct {
	Fields map[string]string `json:"fields"`
}

type calculationResponse struct {
	Fields      map[string]string    `json:"fields"`
	Accepted    *bool                `json:"accepted,omitempty"`
	Rejected    []string             `json:"rejected,omitempty"`
	Metrics     calculator.MetricSet `json:"metrics"`
	Display     format.Display       `json:"display"`
	Heading     string               `json:"heading"`
	Breakdown   []breakdownLine      `json:"breakdown"`
	ShowResults bool                 `json:"showResults"`
}

func newCalculationResponse(fields calculator.FieldSet, rejected []calculator.Field) calculationResponse {
	metrics := calculator.Derive(fields)
	resp := calculationResponse{
		Fields:      fields.Values(),
		Metrics:     metrics,
		Display:     format.DisplayMetrics(metrics),
		Heading:     impactHeading(fields.Value(calculator.DepartmentName)),
		Breakdown:   newBreakdown(fields, metrics),
		ShowResults: metrics.ShowResults,
	}
	for _, f := range rejected {
		resp.Rejected = append(resp.Rejected, string(f))
	}
	return resp
}

func (h *handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEdit"

	var req editRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	field, ok := calculator.ParseField(req.Field)
	if !ok {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown field %q", req.Field), op)
		return
	}

	fields, rejected := calculator.FieldSetFromValues(req.Fields)
	fields, accepted := fields.Apply(field, req.Value)

	if !accepted {
		h.logger.Debug("edit rejected",
			zap.String("op", op),
			zap.String("field", string(field)),
		)
	}

	resp := newCalculationResponse(fields, rejected)
	resp.Accepted = &accepted
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleMetrics"

	var req metricsRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	fields, rejected := calculator.FieldSetFromValues(req.Fields)
	h.writeJSON(w, http.StatusOK, newCalculationResponse(fields, rejected))
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", maxBytesErr.Limit), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculator request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
