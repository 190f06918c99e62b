package quizsession

import (
	"github.com/quizdeck/backend/internal/domain/progress"
	"github.com/quizdeck/backend/internal/domain/questionbank"
)

// Mode is the session variant: every question of a section, or only the
// previously-missed ones.
type Mode string

const (
	ModeAll   Mode = "all"
	ModeWrong Mode = "wrong"
)

// ParseMode maps a raw URL parameter to a Mode. Anything other than "wrong"
// is treated as "all".
func ParseMode(raw string) Mode {
	if raw == string(ModeWrong) {
		return ModeWrong
	}
	return ModeAll
}

// Select computes the ordered question list for a session. Bank order is
// preserved: it defines quiz progression order. In wrong mode the list is
// filtered against the snapshot taken when the session starts, so answers
// recorded during the session do not reshuffle the in-progress list.
//
// An empty result is not an error here. The caller distinguishes an unknown
// section (configuration error) from a known section with nothing left to
// review (redirect to results) by checking section existence first.
func Select(all []questionbank.Question, snap progress.Snapshot, section string, mode Mode) []questionbank.Question {
	selected := questionbank.BySection(all, section)
	if mode != ModeWrong {
		return selected
	}

	var wrong []questionbank.Question
	for _, q := range selected {
		if rec, ok := snap.Record(q.ID); ok && !rec.Correct {
			wrong = append(wrong, q)
		}
	}
	return wrong
}
