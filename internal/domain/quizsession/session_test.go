package quizsession_test

import (
	"context"
	"errors"
	"testing"

	"github.com/quizdeck/backend/internal/domain/progress"
	"github.com/quizdeck/backend/internal/domain/questionbank"
	"github.com/quizdeck/backend/internal/domain/quizsession"
)

// memProgress is an in-memory stand-in for the durable store.
type memProgress struct {
	snap progress.Snapshot
}

func newMemProgress() *memProgress {
	return &memProgress{snap: progress.Empty()}
}

func (m *memProgress) Read(ctx context.Context) (progress.Snapshot, error) {
	return m.snap, nil
}

func (m *memProgress) RecordAnswer(ctx context.Context, id, chosen string, correct bool) error {
	m.snap.SetAnswer(id, chosen, correct)
	return nil
}

func twoQuestionBank() []questionbank.Question {
	return []questionbank.Question{
		{
			ID:      "1",
			Section: "S",
			Prompt:  "first?",
			Choices: questionbank.ChoiceList{{Key: "A", Text: "yes"}, {Key: "B", Text: "no"}},
			Answer:  "A",
		},
		{
			ID:      "2",
			Section: "S",
			Prompt:  "second?",
			Choices: questionbank.ChoiceList{{Key: "A", Text: "yes"}, {Key: "B", Text: "no"}, {Key: "C", Text: "maybe"}},
			Answer:  "B",
		},
	}
}

func newActiveSession(t *testing.T) *quizsession.Session {
	t.Helper()
	bank := twoQuestionBank()
	session, err := quizsession.New("S", quizsession.ModeAll, bank, bank)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return session
}

func TestNew_RejectsEmptySelection(t *testing.T) {
	bank := twoQuestionBank()

	_, err := quizsession.New("S", quizsession.ModeAll, bank, nil)
	if !errors.Is(err, quizsession.ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
}

func TestRender_FirstQuestion(t *testing.T) {
	session := newActiveSession(t)

	state, err := session.Render(context.Background(), newMemProgress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.Position != 1 || state.Total != 2 {
		t.Errorf("expected counter 1/2, got %d/%d", state.Position, state.Total)
	}
	if state.Prompt != "first?" {
		t.Errorf("expected first prompt, got %q", state.Prompt)
	}
	if len(state.Choices) != 2 || state.Choices[0].Key != "A" || state.Choices[1].Key != "B" {
		t.Errorf("expected choices in declared order, got %v", state.Choices)
	}
	if state.Answered {
		t.Error("expected question not yet answered")
	}
	if state.Score.Answered != 0 || state.Score.Total != 2 {
		t.Errorf("expected fresh empty score over section, got %+v", state.Score)
	}
}

func TestSubmit_CorrectAnswer(t *testing.T) {
	session := newActiveSession(t)
	store := newMemProgress()

	result, err := session.Submit(context.Background(), store, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Verdict.Correct {
		t.Error("expected a correct verdict")
	}
	if result.Verdict.Text != "Correct!" {
		t.Errorf("unexpected verdict text %q", result.Verdict.Text)
	}

	rec, ok := store.snap.Record("1")
	if !ok || rec.Chosen != "A" || !rec.Correct {
		t.Errorf("expected persisted record {A true}, got %+v (ok=%v)", rec, ok)
	}

	// Score is refreshed after the write, never stale.
	if result.Score.Answered != 1 || result.Score.Correct != 1 {
		t.Errorf("expected refreshed score 1/1, got %+v", result.Score)
	}
	if result.Accuracy != 100 {
		t.Errorf("expected accuracy 100, got %d", result.Accuracy)
	}
}

func TestSubmit_WrongAnswerRevealsChoices(t *testing.T) {
	session := newActiveSession(t)
	store := newMemProgress()

	result, err := session.Submit(context.Background(), store, "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Verdict.Correct {
		t.Error("expected a wrong verdict")
	}
	if result.Verdict.Text != "Wrong! Correct answer: A" {
		t.Errorf("unexpected verdict text %q", result.Verdict.Text)
	}

	for _, reveal := range result.Reveal {
		switch reveal.Key {
		case "A":
			if !reveal.Correct || reveal.Wrong {
				t.Errorf("expected A flagged correct, got %+v", reveal)
			}
		case "B":
			if !reveal.Chosen || !reveal.Wrong || reveal.Correct {
				t.Errorf("expected B flagged chosen and wrong, got %+v", reveal)
			}
		}
	}
}

func TestSubmit_SecondSubmissionRejected(t *testing.T) {
	session := newActiveSession(t)
	store := newMemProgress()

	if _, err := session.Submit(context.Background(), store, "B"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := session.Submit(context.Background(), store, "A")
	if !errors.Is(err, quizsession.ErrAlreadyAnswered) {
		t.Errorf("expected ErrAlreadyAnswered, got %v", err)
	}

	// The first record stands: re-submission never overwrites within a render.
	rec, _ := store.snap.Record("1")
	if rec.Chosen != "B" {
		t.Errorf("expected chosen B to stand, got %q", rec.Chosen)
	}
}

func TestSubmit_UnknownChoice(t *testing.T) {
	session := newActiveSession(t)

	_, err := session.Submit(context.Background(), newMemProgress(), "Z")
	if !errors.Is(err, quizsession.ErrUnknownChoice) {
		t.Errorf("expected ErrUnknownChoice, got %v", err)
	}
}

func TestAdvance_MovesToNextQuestion(t *testing.T) {
	session := newActiveSession(t)
	store := newMemProgress()

	if _, err := session.Submit(context.Background(), store, "A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := session.Advance(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Redirect != nil {
		t.Fatal("expected a next state, got a redirect")
	}
	if result.Next.Position != 2 || result.Next.Prompt != "second?" {
		t.Errorf("expected question 2, got position %d prompt %q", result.Next.Position, result.Next.Prompt)
	}
	if result.Next.Answered {
		t.Error("expected the new question to accept an answer")
	}
}

func TestAdvance_PastEndRedirectsToResults(t *testing.T) {
	session := newActiveSession(t)
	store := newMemProgress()

	if _, err := session.Advance(context.Background(), store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := session.Advance(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Redirect == nil {
		t.Fatal("expected a redirect at end of list")
	}
	if result.Redirect.To != "results" || result.Redirect.Section != "S" || result.Redirect.Mode != quizsession.ModeAll {
		t.Errorf("expected redirect to results for S/all, got %+v", result.Redirect)
	}

	if !session.Completed() {
		t.Error("expected session to be terminal")
	}

	// A terminal session never renders again.
	if _, err := session.Render(context.Background(), store); !errors.Is(err, quizsession.ErrCompleted) {
		t.Errorf("expected ErrCompleted on render, got %v", err)
	}
	if _, err := session.Advance(context.Background(), store); !errors.Is(err, quizsession.ErrCompleted) {
		t.Errorf("expected ErrCompleted on advance, got %v", err)
	}
	if _, err := session.Submit(context.Background(), store, "A"); !errors.Is(err, quizsession.ErrCompleted) {
		t.Errorf("expected ErrCompleted on submit, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	registry := quizsession.NewRegistry()
	session := newActiveSession(t)

	registry.Put(session)

	got, ok := registry.Get(session.ID)
	if !ok || got != session {
		t.Fatal("expected to retrieve the stored session")
	}

	registry.Remove(session.ID)
	if _, ok := registry.Get(session.ID); ok {
		t.Error("expected session to be gone after removal")
	}
}
