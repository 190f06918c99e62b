package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/quizdeck/backend/internal/domain/progress"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportData struct {
	Version    string            `json:"version" example:"1.0"`
	ExportedAt string            `json:"exported_at" example:"2026-08-30T12:00:00Z"`
	Progress   progress.Snapshot `json:"progress"`
}

type ImportResult struct {
	RecordsRestored int `json:"records_restored" example:"12"`
}

func (d *ExportData) Validate() error {
	if d.Version == "" {
		return errors.New("version is required")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// resetProgress discards all recorded answers.
// @Summary      Reset progress
// @Description  Deletes the durable progress record wholesale. Every score afterwards reports zero answered.
// @Tags         Progress
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /progress [delete]
func (h *Handler) resetProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		h.logger.Error("clearing progress", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to reset progress")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// exportProgress downloads the progress snapshot.
// @Summary      Export progress
// @Description  Returns the full progress snapshot as a versioned JSON download.
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  ExportData
// @Failure      500  {object}  map[string]string
// @Router       /progress/export [get]
func (h *Handler) exportProgress(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Read(r.Context())
	if err != nil {
		h.logger.Error("reading progress", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read progress")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="quizdeck-progress.json"`)
	respondJSON(w, http.StatusOK, ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Progress:   snap,
	})
}

// importProgress restores a previously exported snapshot.
// @Summary      Import progress
// @Description  Replaces the durable progress record with the uploaded snapshot.
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Param        body  body      ExportData  true  "Previously exported snapshot"
// @Success      200   {object}  ImportResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /progress/import [post]
func (h *Handler) importProgress(w http.ResponseWriter, r *http.Request) {
	var data ExportData
	if !decodeAndValidate(w, r, &data) {
		return
	}

	snap := data.Progress
	if snap.Answered == nil {
		snap = progress.Empty()
	}

	if err := h.store.Write(r.Context(), snap); err != nil {
		h.logger.Error("writing progress", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to import progress")
		return
	}

	respondJSON(w, http.StatusOK, ImportResult{RecordsRestored: len(snap.Answered)})
}
