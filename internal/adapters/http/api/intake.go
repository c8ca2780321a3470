// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gravelgod/agf/internal/intake"
)

// IntakeHandler handles form submissions.
type IntakeHandler struct {
	deps Dependencies
}

// NewIntakeHandler creates a new intake handler.
func NewIntakeHandler(deps Dependencies) *IntakeHandler {
	return &IntakeHandler{deps: deps}
}

// HandlePostIntake handles POST /intake requests.
func (h *IntakeHandler) HandlePostIntake(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_intake"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var form intake.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	derived, problems, err := h.deps.Submit(r.Context(), &form)
	switch {
	case errors.Is(err, intake.ErrRateLimited):
		writeJSON(w, http.StatusTooManyRequests, intakeResponse{
			Status:   "rate_limited",
			Problems: problems,
		})
		return
	case errors.Is(err, intake.ErrInvalid):
		writeJSON(w, http.StatusBadRequest, intakeResponse{
			Status:   "rejected",
			Problems: problems,
		})
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}

	writeJSON(w, http.StatusCreated, intakeResponse{
		Status:    "accepted",
		AthleteID: derived.AthleteID,
		Tier:      string(derived.Tier),
		RiskLevel: string(derived.RiskLevel),
		PlanWeeks: derived.PlanWeeks,
	})
}
