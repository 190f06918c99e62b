package questionbank

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"unicode"
)

// Question is a single multiple-choice question. Questions are immutable
// once the bank is loaded; records in the progress store are keyed by ID,
// so IDs must stay stable across restarts.
type Question struct {
	ID      string
	Section string
	Prompt  string
	Choices ChoiceList
	Answer  string
}

// Choice is one selectable option, addressed by a single-letter key.
type Choice struct {
	Key  string
	Text string
}

// ChoiceList keeps choices in their declared order. The bank file stores
// choices as a JSON object whose key order defines display order, which a
// plain map would lose.
type ChoiceList []Choice

func (c *ChoiceList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("choices must be a JSON object")
	}

	list := ChoiceList{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.New("choice key must be a string")
		}

		var text string
		if err := dec.Decode(&text); err != nil {
			return err
		}
		list = append(list, Choice{Key: key, Text: text})
	}

	*c = list
	return nil
}

// Get returns the choice text for key.
func (c ChoiceList) Get(key string) (string, bool) {
	for _, choice := range c {
		if choice.Key == key {
			return choice.Text, true
		}
	}
	return "", false
}

// Keys returns the choice keys in display order.
func (c ChoiceList) Keys() []string {
	keys := make([]string, len(c))
	for i, choice := range c {
		keys[i] = choice.Key
	}
	return keys
}

// Sections returns the distinct section keys of qs, in bank order.
func Sections(qs []Question) []string {
	seen := make(map[string]bool)
	var sections []string
	for _, q := range qs {
		if !seen[q.Section] {
			seen[q.Section] = true
			sections = append(sections, q.Section)
		}
	}
	return sections
}

// BySection returns the questions belonging to section, preserving bank order.
func BySection(qs []Question, section string) []Question {
	var filtered []Question
	for _, q := range qs {
		if q.Section == section {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// HasSection reports whether section is a known section key of qs.
func HasSection(qs []Question, section string) bool {
	for _, q := range qs {
		if q.Section == section {
			return true
		}
	}
	return false
}

// SectionTitle turns a slug section key into a display title, e.g.
// "image-filtering-and-edge-detection" becomes "Image filtering and edge detection".
func SectionTitle(key string) string {
	title := strings.ReplaceAll(key, "-", " ")
	runes := []rune(title)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
