// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/heft/internal/domain/geom"
	"github.com/okian/heft/internal/domain/types"
	"github.com/okian/heft/internal/session"
)

// DragHandler handles point drag requests.
type DragHandler struct {
	deps Dependencies
}

// NewDragHandler creates a new drag handler.
func NewDragHandler(deps Dependencies) *DragHandler {
	return &DragHandler{deps: deps}
}

// dragRequest carries a screen-space touch position. Point selects the
// point explicitly (continuing a drag); when empty the nearest active point
// within the hit radius is grabbed.
type dragRequest struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Point string  `json:"point,omitempty"`
}

type dragResponse struct {
	Point        string             `json:"point"`
	Measurements types.Measurements `json:"measurements"`
}

// HandleDrag handles POST /sessions/{id}/drag requests.
func (h *DragHandler) HandleDrag(w http.ResponseWriter, r *http.Request) {
	const op = "api.drag"
	var req dragRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	var grab *session.Role
	if req.Point != "" {
		role, err := session.ParseRole(req.Point)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		grab = &role
	}

	role, m, err := h.deps.Drag(r.Context(), r.PathValue("id"), geom.Point{X: req.X, Y: req.Y}, grab)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, dragResponse{Point: role.String(), Measurements: m})
}
