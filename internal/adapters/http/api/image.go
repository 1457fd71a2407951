// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/heft/internal/domain/geom"
	"github.com/okian/heft/internal/domain/placement"
	"github.com/okian/heft/internal/imageinfo"
)

// ImageHandler handles image load and viewport requests.
type ImageHandler struct {
	deps           Dependencies
	maxUploadBytes int64
}

// NewImageHandler creates a new image handler.
func NewImageHandler(deps Dependencies, maxUploadBytes int64) *ImageHandler {
	return &ImageHandler{deps: deps, maxUploadBytes: maxUploadBytes}
}

// imageRequest is the JSON body for POST /sessions/{id}/image: either the
// pixel dimensions the client already knows, optionally with detector
// landmark hints.
type imageRequest struct {
	Width    float64          `json:"width"`
	Height   float64          `json:"height"`
	UseHints *bool            `json:"use_hints,omitempty"`
	Hints    *placement.Hints `json:"hints,omitempty"`
}

// sizeRequest is the JSON body for PUT /sessions/{id}/viewport.
type sizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// HandleLoadImage handles POST /sessions/{id}/image requests. The body is
// either JSON with declared dimensions or multipart form data with a
// "photo" part whose dimensions are decoded server-side.
func (h *ImageHandler) HandleLoadImage(w http.ResponseWriter, r *http.Request) {
	const op = "api.load_image"
	id := r.PathValue("id")

	var (
		img   geom.Size
		hints *placement.Hints
		use   *bool
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		photo, _, err := r.FormFile("photo")
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		defer func() { _ = photo.Close() }()

		img, err = imageinfo.Dimensions(photo)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
	} else {
		var req imageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		img = geom.Size{W: req.Width, H: req.Height}
		hints = req.Hints
		use = req.UseHints
	}

	view, err := h.deps.LoadImage(r.Context(), id, img, hints, use)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleSetViewport handles PUT /sessions/{id}/viewport requests.
func (h *ImageHandler) HandleSetViewport(w http.ResponseWriter, r *http.Request) {
	const op = "api.set_viewport"
	var req sizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.SetViewport(r.Context(), r.PathValue("id"), geom.Size{W: req.Width, H: req.Height}); err != nil {
		writeDomainError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
