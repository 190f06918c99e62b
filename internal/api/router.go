package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Views
	mux.HandleFunc("GET /views/home", h.home)
	mux.HandleFunc("GET /views/results", h.results)

	// Quiz sessions
	mux.HandleFunc("POST /quiz/sessions", h.startSession)
	mux.HandleFunc("GET /quiz/sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /quiz/sessions/{sessionID}/answer", h.submitAnswer)
	mux.HandleFunc("POST /quiz/sessions/{sessionID}/next", h.advanceSession)

	// Progress
	mux.HandleFunc("DELETE /progress", h.resetProgress)
	mux.HandleFunc("GET /progress/export", h.exportProgress)
	mux.HandleFunc("POST /progress/import", h.importProgress)
}
