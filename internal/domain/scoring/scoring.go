package scoring

import (
	"math"

	"github.com/quizdeck/backend/internal/domain/progress"
	"github.com/quizdeck/backend/internal/domain/questionbank"
)

// Scope is a predicate selecting the questions a score is computed over.
type Scope func(q questionbank.Question) bool

// AllScope covers every question in the bank.
func AllScope(questionbank.Question) bool { return true }

// SectionScope covers the questions of a single section.
func SectionScope(section string) Scope {
	return func(q questionbank.Question) bool {
		return q.Section == section
	}
}

// Summary is the derived score for a scope. It is always recomputed from the
// progress snapshot, never cached.
type Summary struct {
	Answered int
	Correct  int
	Total    int
}

// Score projects the snapshot onto the questions matching scope.
func Score(qs []questionbank.Question, snap progress.Snapshot, scope Scope) Summary {
	var sum Summary
	for _, q := range qs {
		if !scope(q) {
			continue
		}
		sum.Total++
		rec, ok := snap.Record(q.ID)
		if !ok {
			continue
		}
		sum.Answered++
		if rec.Correct {
			sum.Correct++
		}
	}
	return sum
}

// WrongIDs returns the ids of in-scope questions answered incorrectly,
// preserving bank order.
func WrongIDs(qs []questionbank.Question, snap progress.Snapshot, scope Scope) []string {
	var ids []string
	for _, q := range qs {
		if !scope(q) {
			continue
		}
		if rec, ok := snap.Record(q.ID); ok && !rec.Correct {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// AccuracyPercent is correct/answered as a whole percentage, rounded half up
// (2 of 3 is 67%, 1 of 3 is 33%). Zero answered yields 0.
func AccuracyPercent(answered, correct int) int {
	return percent(correct, answered)
}

// ProgressPercent is done/total as a whole percentage, rounded half up.
// Used for the overall home-view bar and the in-session position bar.
func ProgressPercent(done, total int) int {
	return percent(done, total)
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(part)/float64(whole) + 0.5))
}
