// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quizdeck/backend/internal/domain/questionbank"
	"github.com/quizdeck/backend/internal/domain/quizsession"
	"github.com/quizdeck/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	bank     []questionbank.Question
	store    *store.SQLiteStore
	sessions *quizsession.Registry
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies. The bank slice is
// the process-wide immutable question bank loaded at startup.
func NewHandler(bank []questionbank.Question, s *store.SQLiteStore, sessions *quizsession.Registry, logger *slog.Logger) *Handler {
	return &Handler{
		bank:     bank,
		store:    s,
		sessions: sessions,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v. Returns false (and writes a 400)
// if the body is not valid JSON; the caller should return.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

type validator interface {
	Validate() error
}

// decodeAndValidate decodes the request body and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleSessionError maps session state-machine errors to HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleSessionError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, quizsession.ErrCompleted):
		respondError(w, http.StatusConflict, "session already completed")
	case errors.Is(err, quizsession.ErrAlreadyAnswered):
		respondError(w, http.StatusConflict, "current question was already answered")
	case errors.Is(err, quizsession.ErrUnknownChoice):
		respondError(w, http.StatusBadRequest, "unknown choice key")
	default:
		h.logger.Error("session error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
