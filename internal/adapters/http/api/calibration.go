// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// CalibrationHandler handles calibration mode requests.
type CalibrationHandler struct {
	deps Dependencies
}

// NewCalibrationHandler creates a new calibration handler.
func NewCalibrationHandler(deps Dependencies) *CalibrationHandler {
	return &CalibrationHandler{deps: deps}
}

// calibrationRequest toggles calibration mode and optionally moves the
// reference-length slider. Out-of-range lengths are clamped, not rejected.
type calibrationRequest struct {
	Active            bool     `json:"active"`
	ReferenceLengthCm *float64 `json:"reference_length_cm,omitempty"`
}

// HandleSetCalibration handles PUT /sessions/{id}/calibration requests.
func (h *CalibrationHandler) HandleSetCalibration(w http.ResponseWriter, r *http.Request) {
	const op = "api.set_calibration"
	var req calibrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	view, err := h.deps.SetCalibration(r.Context(), r.PathValue("id"), req.Active, req.ReferenceLengthCm)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
