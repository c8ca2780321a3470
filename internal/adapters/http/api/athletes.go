// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gravelgod/agf/internal/adapters/repository"
)

// AthletesHandler serves stored athlete data.
type AthletesHandler struct {
	deps Dependencies
}

// NewAthletesHandler creates a new athletes handler.
func NewAthletesHandler(deps Dependencies) *AthletesHandler {
	return &AthletesHandler{deps: deps}
}

// HandleListAthletes handles GET /athletes requests.
func (h *AthletesHandler) HandleListAthletes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ids, err := h.deps.Athletes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"athletes": ids})
}

// HandleGetDerived handles GET /athletes/{id}/derived requests.
func (h *AthletesHandler) HandleGetDerived(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_derived"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/athletes/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "derived" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	athleteID := parts[0]

	derived, err := h.deps.DerivedFor(r.Context(), athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}
	writeJSON(w, http.StatusOK, derived)
}
