// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// ReadingsHandler handles measurement, estimate, and overlay reads.
type ReadingsHandler struct {
	deps Dependencies
}

// NewReadingsHandler creates a new readings handler.
func NewReadingsHandler(deps Dependencies) *ReadingsHandler {
	return &ReadingsHandler{deps: deps}
}

// HandleMeasurements handles GET /sessions/{id}/measurements requests.
func (h *ReadingsHandler) HandleMeasurements(w http.ResponseWriter, r *http.Request) {
	const op = "api.measurements"
	m, err := h.deps.Measurements(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// HandleEstimate handles GET /sessions/{id}/estimate requests.
func (h *ReadingsHandler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	const op = "api.estimate"
	est, err := h.deps.Estimate(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, est)
}

// HandleOverlay handles GET /sessions/{id}/overlay requests.
func (h *ReadingsHandler) HandleOverlay(w http.ResponseWriter, r *http.Request) {
	const op = "api.overlay"
	overlay, err := h.deps.Overlay(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, overlay)
}
