package quizsession

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/quizdeck/backend/internal/domain/progress"
	"github.com/quizdeck/backend/internal/domain/questionbank"
	"github.com/quizdeck/backend/internal/domain/scoring"
)

// State of a session. A session enters Active with a non-empty question list
// and ends in Completed; the loading and error phases live with the caller
// that builds the session.
type State int

const (
	StateActive State = iota
	StateCompleted
)

var (
	ErrNoQuestions     = errors.New("session requires at least one question")
	ErrCompleted       = errors.New("session already completed")
	ErrAlreadyAnswered = errors.New("current question already answered")
	ErrUnknownChoice   = errors.New("unknown choice key")
)

// Progress is the durable store the session records answers against and
// derives scores from.
type Progress interface {
	Read(ctx context.Context) (progress.Snapshot, error)
	RecordAnswer(ctx context.Context, id, chosen string, correct bool) error
}

// Session is one in-progress traversal of a selected question list.
// The cursor only moves forward; once it passes the last question the
// session is terminal and signals a redirect instead of rendering.
type Session struct {
	ID      string
	Section string
	Mode    Mode

	bank      []questionbank.Question
	questions []questionbank.Question

	mu       sync.Mutex
	cursor   int
	answered bool
	state    State
}

// New builds an active session over the selected questions. The caller must
// have run Select and the empty-selection pre-checks first; an empty list is
// rejected here so a terminal session can never render.
func New(section string, mode Mode, bank, selected []questionbank.Question) (*Session, error) {
	if len(selected) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		ID:        uuid.NewString(),
		Section:   section,
		Mode:      mode,
		bank:      bank,
		questions: selected,
	}, nil
}

// ChoiceView is one choice as handed to the rendering surface.
type ChoiceView struct {
	Key  string
	Text string
}

// RenderState is everything a rendering surface needs for the current
// question: the prompt and ordered choices, the position counter, and a
// freshly computed section score.
type RenderState struct {
	SessionID       string
	Section         string
	Mode            Mode
	Position        int // 1-based
	Total           int
	Prompt          string
	Choices         []ChoiceView
	Answered        bool
	ProgressPercent int
	Score           scoring.Summary
	Accuracy        int
}

// ChoiceReveal marks how one choice should be styled after an answer:
// the correct choice is always flagged, and the user's choice is flagged
// wrong when it missed.
type ChoiceReveal struct {
	Key     string
	Correct bool
	Chosen  bool
	Wrong   bool
}

// Verdict is the textual outcome of one answer.
type Verdict struct {
	Correct       bool
	CorrectChoice string
	Text          string
}

// SubmitResult carries the verdict, the per-choice reveal, and the score
// refreshed after the record was persisted.
type SubmitResult struct {
	Verdict  Verdict
	Reveal   []ChoiceReveal
	Score    scoring.Summary
	Accuracy int
}

// Redirect is the terminal hand-off target, carrying section and mode so the
// results view can scope itself identically.
type Redirect struct {
	To      string
	Section string
	Mode    Mode
}

// AdvanceResult is either the next render state or, at the end of the list,
// the redirect to results.
type AdvanceResult struct {
	Next     *RenderState
	Redirect *Redirect
}

// Render returns the state for the current question. The section score is
// recomputed from the live snapshot on every call so it is never stale.
func (s *Session) Render(ctx context.Context, store Progress) (RenderState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateCompleted {
		return RenderState{}, ErrCompleted
	}

	snap, err := store.Read(ctx)
	if err != nil {
		return RenderState{}, err
	}
	return s.renderLocked(snap), nil
}

// Submit grades the answer for the current question, persists the record, and
// returns the reveal, verdict, and refreshed score. A question accepts exactly
// one submission per render; repeats are rejected.
func (s *Session) Submit(ctx context.Context, store Progress, key string) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateCompleted {
		return SubmitResult{}, ErrCompleted
	}
	if s.answered {
		return SubmitResult{}, ErrAlreadyAnswered
	}

	q := s.questions[s.cursor]
	if _, ok := q.Choices.Get(key); !ok {
		return SubmitResult{}, ErrUnknownChoice
	}

	correct := key == q.Answer
	if err := store.RecordAnswer(ctx, q.ID, key, correct); err != nil {
		return SubmitResult{}, err
	}
	s.answered = true

	reveal := make([]ChoiceReveal, len(q.Choices))
	for i, choice := range q.Choices {
		reveal[i] = ChoiceReveal{
			Key:     choice.Key,
			Correct: choice.Key == q.Answer,
			Chosen:  choice.Key == key,
			Wrong:   choice.Key == key && !correct,
		}
	}

	verdict := Verdict{Correct: correct, CorrectChoice: q.Answer}
	if correct {
		verdict.Text = "Correct!"
	} else {
		verdict.Text = "Wrong! Correct answer: " + q.Answer
	}

	snap, err := store.Read(ctx)
	if err != nil {
		return SubmitResult{}, err
	}
	score := scoring.Score(s.bank, snap, scoring.SectionScope(s.Section))

	return SubmitResult{
		Verdict:  verdict,
		Reveal:   reveal,
		Score:    score,
		Accuracy: scoring.AccuracyPercent(score.Answered, score.Correct),
	}, nil
}

// Advance moves the cursor forward. Within bounds it returns the next render
// state; past the last question the session becomes terminal and returns the
// redirect to the results view.
func (s *Session) Advance(ctx context.Context, store Progress) (AdvanceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateCompleted {
		return AdvanceResult{}, ErrCompleted
	}

	s.cursor++
	s.answered = false

	if s.cursor >= len(s.questions) {
		s.state = StateCompleted
		return AdvanceResult{
			Redirect: &Redirect{To: "results", Section: s.Section, Mode: s.Mode},
		}, nil
	}

	snap, err := store.Read(ctx)
	if err != nil {
		return AdvanceResult{}, err
	}
	next := s.renderLocked(snap)
	return AdvanceResult{Next: &next}, nil
}

// Completed reports whether the session is terminal.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateCompleted
}

func (s *Session) renderLocked(snap progress.Snapshot) RenderState {
	q := s.questions[s.cursor]

	choices := make([]ChoiceView, len(q.Choices))
	for i, choice := range q.Choices {
		choices[i] = ChoiceView{Key: choice.Key, Text: choice.Text}
	}

	score := scoring.Score(s.bank, snap, scoring.SectionScope(s.Section))

	return RenderState{
		SessionID:       s.ID,
		Section:         s.Section,
		Mode:            s.Mode,
		Position:        s.cursor + 1,
		Total:           len(s.questions),
		Prompt:          q.Prompt,
		Choices:         choices,
		Answered:        s.answered,
		ProgressPercent: scoring.ProgressPercent(s.cursor, len(s.questions)),
		Score:           score,
		Accuracy:        scoring.AccuracyPercent(score.Answered, score.Correct),
	}
}
