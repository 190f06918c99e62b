package progress

import "encoding/json"

// AnswerRecord is the persisted outcome of one answered question.
type AnswerRecord struct {
	Chosen  string `json:"chosen"`
	Correct bool   `json:"correct"`
}

// Snapshot is the full durable progress state: one record per question id.
// Re-answering a question replaces its record, it never accumulates.
type Snapshot struct {
	Answered map[string]AnswerRecord `json:"answered"`
}

// Empty returns a snapshot with no recorded answers.
func Empty() Snapshot {
	return Snapshot{Answered: make(map[string]AnswerRecord)}
}

// Record returns the answer record for a question id, if one exists.
func (s Snapshot) Record(id string) (AnswerRecord, bool) {
	rec, ok := s.Answered[id]
	return rec, ok
}

// SetAnswer records the outcome for a question id, overwriting any prior record.
func (s *Snapshot) SetAnswer(id, chosen string, correct bool) {
	if s.Answered == nil {
		s.Answered = make(map[string]AnswerRecord)
	}
	s.Answered[id] = AnswerRecord{Chosen: chosen, Correct: correct}
}

// Decode parses a persisted snapshot. A malformed or empty payload is treated
// as "no progress" rather than an error, so a corrupt store never blocks the user.
func Decode(data []byte) Snapshot {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil || snap.Answered == nil {
		return Empty()
	}
	return snap
}

// Encode serializes the snapshot for persistence.
func (s Snapshot) Encode() ([]byte, error) {
	if s.Answered == nil {
		s.Answered = make(map[string]AnswerRecord)
	}
	return json.Marshal(s)
}
