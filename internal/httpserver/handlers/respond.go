package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dastodo/market/internal/httpserver/deps"
	"github.com/dastodo/market/internal/logger"
	"github.com/dastodo/market/internal/storage"
	"github.com/dastodo/market/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeStoreError maps the store error taxonomy onto HTTP statuses:
// not-found is a normal 404, a rejected draft is a 400 with the offending
// field, a corrupt payload is a 500 and an unreachable medium a 503.
func writeStoreError(w http.ResponseWriter, d deps.Deps, err error) {
	var verr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "listing not found")
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: verr.Error(),
			Field: verr.Field,
		})
	case errors.Is(err, store.ErrCorrupt):
		d.Logger.Error("stored catalog is corrupt", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "stored catalog is corrupt")
	case errors.Is(err, storage.ErrUnavailable):
		d.Logger.Error("storage unavailable", logger.Error(err))
		writeError(w, http.StatusServiceUnavailable, "storage unavailable")
	default:
		d.Logger.Error("unexpected store error", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
