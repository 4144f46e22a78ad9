package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/iksnae/bookmark-tag/internal/pocket"
)

type Handlers struct {
	source RandomSource
}

func NewHandlers(source RandomSource) *Handlers {
	return &Handlers{source: source}
}

// HandleRandom responds with {"title": ..., "url": ...}
func (h *Handlers) HandleRandom(w http.ResponseWriter, r *http.Request) {
	picked, err := h.source.Random(r.Context())
	if errors.Is(err, pocket.ErrNoItems) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no favorite items"})
		return
	}
	if err != nil {
		internal.LogError("Random pick failed: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "upstream request failed"})
		return
	}

	internal.LogDebug("Picked %s", picked.URL)
	writeJSON(w, http.StatusOK, picked)
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		internal.LogError("Failed to write response: %v", err)
	}
}
