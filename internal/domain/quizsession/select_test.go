package quizsession_test

import (
	"testing"

	"github.com/quizdeck/backend/internal/domain/progress"
	"github.com/quizdeck/backend/internal/domain/questionbank"
	"github.com/quizdeck/backend/internal/domain/quizsession"
)

func bankWithSectionS() []questionbank.Question {
	return []questionbank.Question{
		{ID: "1", Section: "S"},
		{ID: "2", Section: "S"},
		{ID: "3", Section: "S"},
		{ID: "4", Section: "other"},
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw  string
		want quizsession.Mode
	}{
		{"wrong", quizsession.ModeWrong},
		{"all", quizsession.ModeAll},
		{"", quizsession.ModeAll},
		{"review", quizsession.ModeAll},
		{"WRONG", quizsession.ModeAll},
	}

	for _, tc := range tests {
		if got := quizsession.ParseMode(tc.raw); got != tc.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestSelect_AllMode_SectionInBankOrder(t *testing.T) {
	selected := quizsession.Select(bankWithSectionS(), progress.Empty(), "S", quizsession.ModeAll)

	if len(selected) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(selected))
	}
	for i, want := range []string{"1", "2", "3"} {
		if selected[i].ID != want {
			t.Errorf("expected id %q at position %d, got %q", want, i, selected[i].ID)
		}
	}
}

func TestSelect_WrongMode_OnlyIncorrectRecords(t *testing.T) {
	snap := progress.Empty()
	snap.SetAnswer("1", "A", false)
	snap.SetAnswer("2", "B", true)
	// id 3 unanswered: not part of a review session

	selected := quizsession.Select(bankWithSectionS(), snap, "S", quizsession.ModeWrong)

	if len(selected) != 1 {
		t.Fatalf("expected 1 question, got %d", len(selected))
	}
	if selected[0].ID != "1" {
		t.Errorf("expected id 1, got %q", selected[0].ID)
	}
}

func TestSelect_WrongMode_NothingWrongIsEmpty(t *testing.T) {
	snap := progress.Empty()
	snap.SetAnswer("1", "A", true)

	selected := quizsession.Select(bankWithSectionS(), snap, "S", quizsession.ModeWrong)
	if len(selected) != 0 {
		t.Errorf("expected empty selection, got %d questions", len(selected))
	}
}

func TestSelect_UnknownSectionIsEmpty(t *testing.T) {
	selected := quizsession.Select(bankWithSectionS(), progress.Empty(), "missing", quizsession.ModeAll)
	if len(selected) != 0 {
		t.Errorf("expected empty selection, got %d questions", len(selected))
	}
}
