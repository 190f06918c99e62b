package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/quizdeck/backend/internal/domain/questionbank"
	"github.com/quizdeck/backend/internal/domain/quizsession"
	"github.com/quizdeck/backend/internal/domain/scoring"
)

// ── Request / Response types ────────────────────────────────────────────────

type ChoicePayload struct {
	Key  string `json:"key" example:"B"`
	Text string `json:"text" example:"Convolution with a Gaussian kernel"`
}

type ScorePayload struct {
	Answered int `json:"answered" example:"4"`
	Correct  int `json:"correct" example:"3"`
	Total    int `json:"total" example:"10"`
	Accuracy int `json:"accuracy" example:"75"`
}

type SessionStatePayload struct {
	SessionID       string          `json:"session_id" example:"8b8f9c3e-6d1a-4a6e-9f1a-2b3c4d5e6f70"`
	Section         string          `json:"section" example:"image-filtering-and-edge-detection"`
	SectionTitle    string          `json:"section_title" example:"Image filtering and edge detection"`
	Mode            string          `json:"mode" example:"all"`
	Position        int             `json:"position" example:"2"`
	Total           int             `json:"total" example:"10"`
	ProgressPercent int             `json:"progress_percent" example:"10"`
	Prompt          string          `json:"prompt" example:"What does a Gaussian blur do?"`
	Choices         []ChoicePayload `json:"choices"`
	Answered        bool            `json:"answered" example:"false"`
	Score           ScorePayload    `json:"score"`
}

type RedirectPayload struct {
	To      string `json:"to" example:"results"`
	Section string `json:"section" example:"image-filtering-and-edge-detection"`
	Mode    string `json:"mode" example:"wrong"`
}

type StartSessionResponse struct {
	Session  *SessionStatePayload `json:"session,omitempty"`
	Redirect *RedirectPayload     `json:"redirect,omitempty"`
}

type SubmitAnswerRequest struct {
	Choice string `json:"choice" example:"B"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.Choice == "" {
		return errors.New("choice is required")
	}
	return nil
}

type ChoiceRevealPayload struct {
	Key     string `json:"key" example:"B"`
	Correct bool   `json:"correct" example:"true"`
	Chosen  bool   `json:"chosen" example:"false"`
	Wrong   bool   `json:"wrong" example:"false"`
}

type SubmitAnswerResponse struct {
	Correct       bool                  `json:"correct" example:"false"`
	CorrectChoice string                `json:"correct_choice" example:"B"`
	Verdict       string                `json:"verdict" example:"Wrong! Correct answer: B"`
	Reveal        []ChoiceRevealPayload `json:"reveal"`
	Score         ScorePayload          `json:"score"`
}

type AdvanceResponse struct {
	Next     *SessionStatePayload `json:"next,omitempty"`
	Redirect *RedirectPayload     `json:"redirect,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startSession builds a session for a section and mode.
// @Summary      Start a quiz session
// @Description  Selects the section's questions (all of them, or only previously-missed ones with mode=wrong) and returns the first question. A wrong-mode request with nothing left to review returns a redirect to the results view instead of a session.
// @Tags         Quiz
// @Produce      json
// @Param        section  query     string  true   "Section key"
// @Param        mode     query     string  false  "all (default) or wrong"
// @Success      201      {object}  StartSessionResponse  "session started"
// @Success      200      {object}  StartSessionResponse  "nothing to review, redirect"
// @Failure      400      {object}  map[string]string     "missing or unknown section"
// @Failure      500      {object}  map[string]string
// @Router       /quiz/sessions [post]
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	section := r.URL.Query().Get("section")
	if section == "" {
		respondError(w, http.StatusBadRequest,
			"missing section parameter; request /quiz/sessions?section=<section-key> with one of: "+
				strings.Join(questionbank.Sections(h.bank), ", "))
		return
	}

	// Validate section existence before evaluating mode, so an unknown key is
	// a configuration error and never mistaken for "nothing left to review".
	if !questionbank.HasSection(h.bank, section) {
		respondError(w, http.StatusBadRequest, unknownSectionMessage(h.bank, section))
		return
	}

	mode := quizsession.ParseMode(r.URL.Query().Get("mode"))

	snap, err := h.store.Read(ctx)
	if err != nil {
		h.logger.Error("reading progress", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read progress")
		return
	}

	selected := quizsession.Select(h.bank, snap, section, mode)
	if len(selected) == 0 {
		// Known section, wrong mode, nothing recorded wrong: a normal branch,
		// not an error. The caller goes straight to the results view.
		respondJSON(w, http.StatusOK, StartSessionResponse{
			Redirect: &RedirectPayload{To: "results", Section: section, Mode: string(mode)},
		})
		return
	}

	session, err := quizsession.New(section, mode, h.bank, selected)
	if err != nil {
		h.logger.Error("creating session", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	h.sessions.Put(session)

	state, err := session.Render(ctx, h.store)
	if h.handleSessionError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, StartSessionResponse{Session: statePayload(state)})
}

// getSession returns the current question of a session.
// @Summary      Get session state
// @Description  Returns the current question, position counter, and a freshly computed section score.
// @Tags         Quiz
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionStatePayload
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "session completed"
// @Router       /quiz/sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := h.sessions.Get(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	state, err := session.Render(ctx, h.store)
	if h.handleSessionError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, statePayload(state))
}

// submitAnswer grades one answer for the current question.
// @Summary      Submit an answer
// @Description  Grades the choice, persists the outcome, and returns the per-choice reveal, the verdict, and the refreshed section score. A question accepts one submission; repeats return 409.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Chosen key"
// @Success      200        {object}  SubmitAnswerResponse
// @Failure      400        {object}  map[string]string  "unknown choice key"
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "already answered or completed"
// @Router       /quiz/sessions/{sessionID}/answer [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := h.sessions.Get(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := session.Submit(ctx, h.store, req.Choice)
	if h.handleSessionError(w, err) {
		return
	}

	reveal := make([]ChoiceRevealPayload, len(result.Reveal))
	for i, rv := range result.Reveal {
		reveal[i] = ChoiceRevealPayload{Key: rv.Key, Correct: rv.Correct, Chosen: rv.Chosen, Wrong: rv.Wrong}
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		Correct:       result.Verdict.Correct,
		CorrectChoice: result.Verdict.CorrectChoice,
		Verdict:       result.Verdict.Text,
		Reveal:        reveal,
		Score:         scorePayload(result.Score, result.Accuracy),
	})
}

// advanceSession moves to the next question.
// @Summary      Advance the session
// @Description  Moves the cursor forward. Returns the next question, or a redirect to the results view once the list is exhausted; the session is then discarded.
// @Tags         Quiz
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  AdvanceResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "session completed"
// @Router       /quiz/sessions/{sessionID}/next [post]
func (h *Handler) advanceSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("sessionID")
	session, ok := h.sessions.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	result, err := session.Advance(ctx, h.store)
	if h.handleSessionError(w, err) {
		return
	}

	if result.Redirect != nil {
		h.sessions.Remove(id)
		respondJSON(w, http.StatusOK, AdvanceResponse{
			Redirect: &RedirectPayload{
				To:      result.Redirect.To,
				Section: result.Redirect.Section,
				Mode:    string(result.Redirect.Mode),
			},
		})
		return
	}

	respondJSON(w, http.StatusOK, AdvanceResponse{Next: statePayload(*result.Next)})
}

func statePayload(state quizsession.RenderState) *SessionStatePayload {
	choices := make([]ChoicePayload, len(state.Choices))
	for i, c := range state.Choices {
		choices[i] = ChoicePayload{Key: c.Key, Text: c.Text}
	}

	return &SessionStatePayload{
		SessionID:       state.SessionID,
		Section:         state.Section,
		SectionTitle:    questionbank.SectionTitle(state.Section),
		Mode:            string(state.Mode),
		Position:        state.Position,
		Total:           state.Total,
		ProgressPercent: state.ProgressPercent,
		Prompt:          state.Prompt,
		Choices:         choices,
		Answered:        state.Answered,
		Score:           scorePayload(state.Score, state.Accuracy),
	}
}

func scorePayload(sum scoring.Summary, accuracy int) ScorePayload {
	return ScorePayload{
		Answered: sum.Answered,
		Correct:  sum.Correct,
		Total:    sum.Total,
		Accuracy: accuracy,
	}
}
