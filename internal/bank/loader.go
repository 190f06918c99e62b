package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/quizdeck/backend/internal/domain/questionbank"
)

// LoadError means the bank document could not be fetched or is not a JSON
// array. It is fatal: no partial quiz is ever served from a broken bank.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return "bank: " + e.Reason + ": " + e.Err.Error()
	}
	return "bank: " + e.Reason
}

func (e *LoadError) Unwrap() error { return e.Err }

// ValidationError means one bank entry is missing a required field. The whole
// bank is rejected, not just the bad entry.
type ValidationError struct {
	Index int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bank: invalid question format at index %d", e.Index)
}

// Loader fetches and validates the question bank document. Load is meant to
// be called exactly once at process start; the returned slice is shared
// read-only by every other component.
type Loader struct {
	url    string
	client *http.Client
}

func NewLoader(bankURL string, timeout time.Duration) *Loader {
	return &Loader{
		url:    bankURL,
		client: &http.Client{Timeout: timeout},
	}
}

// Load fetches the bank with a cache-defeating query parameter, validates
// every entry, and assigns positional ids ("1".."N") to entries that carry
// none. Array order defines the positional index, so ids stay stable as long
// as the bank ordering is unchanged.
func (l *Loader) Load(ctx context.Context) ([]questionbank.Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cacheBust(l.url), nil)
	if err != nil {
		return nil, &LoadError{Reason: "building request", Err: err}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &LoadError{Reason: "fetching question bank", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Reason: "fetching question bank: HTTP " + strconv.Itoa(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Reason: "reading question bank", Err: err}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &LoadError{Reason: "question bank must be a JSON array", Err: err}
	}

	questions := make([]questionbank.Question, 0, len(entries))
	for i, entry := range entries {
		var raw struct {
			ID      json.RawMessage         `json:"id"`
			Section string                  `json:"section"`
			Prompt  string                  `json:"question"`
			Choices questionbank.ChoiceList `json:"choices"`
			Answer  string                  `json:"answer"`
		}
		if err := json.Unmarshal(entry, &raw); err != nil {
			return nil, &ValidationError{Index: i}
		}
		if raw.Section == "" || raw.Prompt == "" || len(raw.Choices) == 0 || raw.Answer == "" {
			return nil, &ValidationError{Index: i}
		}

		id := stringID(raw.ID)
		if id == "" {
			id = strconv.Itoa(i + 1)
		}

		questions = append(questions, questionbank.Question{
			ID:      id,
			Section: raw.Section,
			Prompt:  raw.Prompt,
			Choices: raw.Choices,
			Answer:  raw.Answer,
		})
	}

	return questions, nil
}

// cacheBust appends a timestamp query parameter so no intermediary serves a
// stale bank file.
func cacheBust(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set("v", strconv.FormatInt(time.Now().UnixNano(), 10))
	u.RawQuery = q.Encode()
	return u.String()
}

// stringID accepts both string and numeric ids from the bank file.
func stringID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return ""
}
