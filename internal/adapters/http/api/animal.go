// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/heft/internal/domain/estimate"
)

// AnimalHandler handles breed and condition selection requests.
type AnimalHandler struct {
	deps Dependencies
}

// NewAnimalHandler creates a new animal handler.
func NewAnimalHandler(deps Dependencies) *AnimalHandler {
	return &AnimalHandler{deps: deps}
}

// animalRequest selects the animal's breed and body condition by name.
type animalRequest struct {
	Breed     string `json:"breed"`
	Condition string `json:"condition"`
}

// HandleSetAnimal handles PUT /sessions/{id}/animal requests.
func (h *AnimalHandler) HandleSetAnimal(w http.ResponseWriter, r *http.Request) {
	const op = "api.set_animal"
	var req animalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	breed, err := estimate.ParseBreed(req.Breed)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	condition, err := estimate.ParseCondition(req.Condition)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}

	est, err := h.deps.SetAnimal(r.Context(), r.PathValue("id"), breed, condition)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, est)
}
