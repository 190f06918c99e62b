package api

import (
	"net/http"
	"strings"

	"github.com/quizdeck/backend/internal/domain/questionbank"
	"github.com/quizdeck/backend/internal/domain/quizsession"
	"github.com/quizdeck/backend/internal/domain/scoring"
)

// ── Request / Response types ────────────────────────────────────────────────

type SectionSummary struct {
	Key      string `json:"key" example:"image-filtering-and-edge-detection"`
	Title    string `json:"title" example:"Image filtering and edge detection"`
	Answered int    `json:"answered" example:"4"`
	Correct  int    `json:"correct" example:"3"`
	Total    int    `json:"total" example:"10"`
	Accuracy int    `json:"accuracy" example:"75"`
}

type HomeResponse struct {
	OverallPercent int              `json:"overall_percent" example:"40"`
	AnsweredCount  int              `json:"answered_count" example:"12"`
	TotalQuestions int              `json:"total_questions" example:"30"`
	Sections       []SectionSummary `json:"sections"`
}

type ReviewLink struct {
	Section string `json:"section" example:"image-filtering-and-edge-detection"`
	Mode    string `json:"mode" example:"wrong"`
	Count   int    `json:"count" example:"2"`
}

type ResultsResponse struct {
	Section      string      `json:"section,omitempty" example:"image-filtering-and-edge-detection"`
	SectionTitle string      `json:"section_title,omitempty" example:"Image filtering and edge detection"`
	PostReview   bool        `json:"post_review" example:"false"`
	Answered     int         `json:"answered" example:"10"`
	Correct      int         `json:"correct" example:"7"`
	Total        int         `json:"total" example:"12"`
	Accuracy     int         `json:"accuracy" example:"70"`
	WrongIDs     []string    `json:"wrong_ids"`
	Review       *ReviewLink `json:"review,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// home returns the summary values for the home view.
// @Summary      Home view data
// @Description  Overall progress percentage plus per-section score summaries.
// @Tags         Views
// @Produce      json
// @Success      200  {object}  HomeResponse
// @Failure      500  {object}  map[string]string
// @Router       /views/home [get]
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snap, err := h.store.Read(ctx)
	if err != nil {
		h.logger.Error("reading progress", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read progress")
		return
	}

	overall := scoring.Score(h.bank, snap, scoring.AllScope)

	keys := questionbank.Sections(h.bank)
	sections := make([]SectionSummary, len(keys))
	for i, key := range keys {
		sum := scoring.Score(h.bank, snap, scoring.SectionScope(key))
		sections[i] = SectionSummary{
			Key:      key,
			Title:    questionbank.SectionTitle(key),
			Answered: sum.Answered,
			Correct:  sum.Correct,
			Total:    sum.Total,
			Accuracy: scoring.AccuracyPercent(sum.Answered, sum.Correct),
		}
	}

	respondJSON(w, http.StatusOK, HomeResponse{
		OverallPercent: scoring.ProgressPercent(overall.Answered, overall.Total),
		AnsweredCount:  overall.Answered,
		TotalQuestions: overall.Total,
		Sections:       sections,
	})
}

// results returns the score summary for a scope.
// @Summary      Results view data
// @Description  Answered/correct/accuracy for a section, or overall when no section is given. mode=wrong only labels the payload as a post-review summary.
// @Tags         Views
// @Produce      json
// @Param        section  query     string  false  "Section key (absent = all sections)"
// @Param        mode     query     string  false  "Set to wrong after a review session"
// @Success      200      {object}  ResultsResponse
// @Failure      400      {object}  map[string]string  "unknown section"
// @Failure      500      {object}  map[string]string
// @Router       /views/results [get]
func (h *Handler) results(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	section := r.URL.Query().Get("section")
	mode := quizsession.ParseMode(r.URL.Query().Get("mode"))

	if section != "" && !questionbank.HasSection(h.bank, section) {
		respondError(w, http.StatusBadRequest, unknownSectionMessage(h.bank, section))
		return
	}

	snap, err := h.store.Read(ctx)
	if err != nil {
		h.logger.Error("reading progress", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read progress")
		return
	}

	scope := scoring.AllScope
	if section != "" {
		scope = scoring.SectionScope(section)
	}

	sum := scoring.Score(h.bank, snap, scope)
	wrongIDs := scoring.WrongIDs(h.bank, snap, scope)

	resp := ResultsResponse{
		Section:    section,
		PostReview: mode == quizsession.ModeWrong,
		Answered:   sum.Answered,
		Correct:    sum.Correct,
		Total:      sum.Total,
		Accuracy:   scoring.AccuracyPercent(sum.Answered, sum.Correct),
		WrongIDs:   wrongIDs,
	}
	if section != "" {
		resp.SectionTitle = questionbank.SectionTitle(section)
		if len(wrongIDs) > 0 {
			resp.Review = &ReviewLink{
				Section: section,
				Mode:    string(quizsession.ModeWrong),
				Count:   len(wrongIDs),
			}
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// unknownSectionMessage states the remedy: the caller used a section key the
// bank does not contain.
func unknownSectionMessage(bank []questionbank.Question, section string) string {
	return "unknown section " + section + "; known sections: " + strings.Join(questionbank.Sections(bank), ", ")
}
