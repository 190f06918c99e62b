package progress_test

import (
	"testing"

	"github.com/quizdeck/backend/internal/domain/progress"
)

func TestSetAnswer_OverwritesPriorRecord(t *testing.T) {
	snap := progress.Empty()

	snap.SetAnswer("3", "A", false)
	snap.SetAnswer("3", "B", true)

	if len(snap.Answered) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(snap.Answered))
	}

	rec, ok := snap.Record("3")
	if !ok {
		t.Fatal("expected a record for id 3")
	}
	if rec.Chosen != "B" || !rec.Correct {
		t.Errorf("expected {B true}, got {%s %v}", rec.Chosen, rec.Correct)
	}
}

func TestDecode_CorruptPayloadIsEmptyProgress(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated json", `{"answered": {"1"`},
		{"wrong shape", `[1, 2, 3]`},
		{"null", `null`},
		{"empty", ``},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := progress.Decode([]byte(tc.data))
			if snap.Answered == nil {
				t.Fatal("expected a usable empty snapshot, got nil map")
			}
			if len(snap.Answered) != 0 {
				t.Errorf("expected no records, got %d", len(snap.Answered))
			}
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	snap := progress.Empty()
	snap.SetAnswer("1", "A", true)
	snap.SetAnswer("2", "C", false)

	data, err := snap.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := progress.Decode(data)
	if len(got.Answered) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got.Answered))
	}
	if rec, _ := got.Record("2"); rec.Chosen != "C" || rec.Correct {
		t.Errorf("expected {C false}, got {%s %v}", rec.Chosen, rec.Correct)
	}
}
