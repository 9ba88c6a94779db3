package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"tradescan/pkg/logger"
)

// ResultsHandler serves the latest scan outcome from the in-memory store.
type ResultsHandler struct {
	store  *Store
	hub    *Hub
	logger *logger.Logger
}

// NewResultsHandler creates a ResultsHandler.
func NewResultsHandler(store *Store, hub *Hub, log *logger.Logger) *ResultsHandler {
	return &ResultsHandler{store: store, hub: hub, logger: log}
}

// GetResults returns the full leaderboard of the latest run.
// GET /api/v1/results
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	outcome, ok := h.store.Outcome()
	if !ok {
		respondError(w, http.StatusNotFound, "no completed scan yet")
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}

// GetResult returns one symbol's composite result from the latest run.
// GET /api/v1/results/{symbol}
func (h *ResultsHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(mux.Vars(r)["symbol"])

	outcome, ok := h.store.Outcome()
	if !ok {
		respondError(w, http.StatusNotFound, "no completed scan yet")
		return
	}

	for _, entry := range outcome.Board.Ranked {
		if entry.Result.Symbol == symbol {
			respondJSON(w, http.StatusOK, entry)
			return
		}
	}
	for _, rejected := range outcome.Board.Rejected {
		if rejected.Symbol == symbol {
			respondJSON(w, http.StatusOK, rejected)
			return
		}
	}
	respondError(w, http.StatusNotFound, "symbol not in latest scan")
}

// GetStatus reports scanner state, last update time, and subscriber count.
// GET /api/v1/status
func (h *ResultsHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	state, updated := h.store.Status()
	payload := map[string]interface{}{
		"state":       state,
		"subscribers": h.hub.ClientCount(),
	}
	if !updated.IsZero() {
		payload["last_update"] = updated.Format(time.RFC3339)
	}
	respondJSON(w, http.StatusOK, payload)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
