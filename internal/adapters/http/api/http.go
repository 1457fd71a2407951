// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/heft/internal/adapters/repository"
	"github.com/okian/heft/internal/domain/estimate"
	"github.com/okian/heft/internal/domain/geom"
	"github.com/okian/heft/internal/domain/placement"
	"github.com/okian/heft/internal/domain/types"
	"github.com/okian/heft/internal/imageinfo"
	"github.com/okian/heft/internal/session"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	CreateSession(ctx context.Context) (types.SessionView, error)
	Session(ctx context.Context, id string) (types.SessionView, error)
	DeleteSession(ctx context.Context, id string)

	LoadImage(ctx context.Context, id string, img geom.Size, hints *placement.Hints, override *bool) (types.SessionView, error)
	SetViewport(ctx context.Context, id string, view geom.Size) error
	Drag(ctx context.Context, id string, screen geom.Point, grab *session.Role) (session.Role, types.Measurements, error)
	SetCalibration(ctx context.Context, id string, active bool, referenceLength *float64) (types.SessionView, error)
	SetAnimal(ctx context.Context, id string, b estimate.Breed, c estimate.Condition) (types.Estimate, error)

	Measurements(ctx context.Context, id string) (types.Measurements, error)
	Estimate(ctx context.Context, id string) (types.Estimate, error)
	Overlay(ctx context.Context, id string) (types.Overlay, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	sessionsHandler    *SessionsHandler
	imageHandler       *ImageHandler
	dragHandler        *DragHandler
	calibrationHandler *CalibrationHandler
	animalHandler      *AnimalHandler
	readingsHandler    *ReadingsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxUploadBytes int64) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		sessionsHandler:    NewSessionsHandler(deps),
		imageHandler:       NewImageHandler(deps, maxUploadBytes),
		dragHandler:        NewDragHandler(deps),
		calibrationHandler: NewCalibrationHandler(deps),
		animalHandler:      NewAnimalHandler(deps),
		readingsHandler:    NewReadingsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("POST /sessions", MetricsMiddleware(s.sessionsHandler.HandleCreate, "sessions"))
	mux.HandleFunc("GET /sessions/{id}", MetricsMiddleware(s.sessionsHandler.HandleGet, "sessions"))
	mux.HandleFunc("DELETE /sessions/{id}", MetricsMiddleware(s.sessionsHandler.HandleDelete, "sessions"))

	mux.HandleFunc("POST /sessions/{id}/image", MetricsMiddleware(s.imageHandler.HandleLoadImage, "image"))
	mux.HandleFunc("PUT /sessions/{id}/viewport", MetricsMiddleware(s.imageHandler.HandleSetViewport, "viewport"))
	mux.HandleFunc("POST /sessions/{id}/drag", MetricsMiddleware(s.dragHandler.HandleDrag, "drag"))
	mux.HandleFunc("PUT /sessions/{id}/calibration", MetricsMiddleware(s.calibrationHandler.HandleSetCalibration, "calibration"))
	mux.HandleFunc("PUT /sessions/{id}/animal", MetricsMiddleware(s.animalHandler.HandleSetAnimal, "animal"))

	mux.HandleFunc("GET /sessions/{id}/measurements", MetricsMiddleware(s.readingsHandler.HandleMeasurements, "measurements"))
	mux.HandleFunc("GET /sessions/{id}/estimate", MetricsMiddleware(s.readingsHandler.HandleEstimate, "estimate"))
	mux.HandleFunc("GET /sessions/{id}/overlay", MetricsMiddleware(s.readingsHandler.HandleOverlay, "overlay"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates engine errors to their HTTP shape. Anything
// unrecognized is a 500.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrStoreFull):
		writeError(w, http.StatusTooManyRequests, "store_full", err)
	case errors.Is(err, geom.ErrInvalidGeometry):
		writeError(w, http.StatusBadRequest, "invalid_geometry", err)
	case errors.Is(err, session.ErrNoImage):
		writeError(w, http.StatusConflict, "no_image", err)
	case errors.Is(err, session.ErrNoPointHit):
		writeError(w, http.StatusConflict, "no_point_hit", err)
	case errors.Is(err, session.ErrUnknownRole),
		errors.Is(err, estimate.ErrUnknownBreed),
		errors.Is(err, estimate.ErrUnknownCondition):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, imageinfo.ErrUndecodable):
		writeError(w, http.StatusUnprocessableEntity, "undecodable_image", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
