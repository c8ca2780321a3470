// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/internal/intake"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Submit validates a form submission and derives parameters from it.
	// Validation problems come back as strings alongside a non-nil error.
	Submit(ctx context.Context, f *intake.Form) (*model.DerivedParameters, []string, error)

	// DerivedFor returns derived parameters for a stored athlete.
	DerivedFor(ctx context.Context, athleteID string) (*model.DerivedParameters, error)

	// Athletes lists stored athlete IDs.
	Athletes(ctx context.Context) ([]string, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	intakeHandler   *IntakeHandler
	athletesHandler *AthletesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		intakeHandler:   NewIntakeHandler(deps),
		athletesHandler: NewAthletesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/intake", MetricsMiddleware(s.intakeHandler.HandlePostIntake, "intake"))
	mux.HandleFunc("/athletes", MetricsMiddleware(s.athletesHandler.HandleListAthletes, "athletes"))
	mux.HandleFunc("/athletes/", MetricsMiddleware(s.athletesHandler.HandleGetDerived, "athlete_derived"))
}

type intakeResponse struct {
	Status    string   `json:"status"`
	AthleteID string   `json:"athlete_id,omitempty"`
	Tier      string   `json:"tier,omitempty"`
	RiskLevel string   `json:"risk_level,omitempty"`
	PlanWeeks int      `json:"plan_weeks,omitempty"`
	Problems  []string `json:"problems,omitempty"`
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
