// Package session implements the flashcard review flow: an unbiased
// shuffle of the unit's words and a small state machine that collects one
// grade per word before the session can be submitted as a record.
package session

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/lmei/wordflash/internal/models"
)

// Recorder persists a completed session. *ledger.Ledger satisfies it.
type Recorder interface {
	AppendRecord(ctx context.Context, grade, unit string, results []models.ReviewResult) (models.Record, error)
}

// State is the review session lifecycle.
type State int

const (
	// StatePresenting: at least one word is still ungraded.
	StatePresenting State = iota
	// StateAllAnswered: every word has a grade; the session may be submitted.
	StateAllAnswered
	// StateSubmitted: terminal; the record has been appended.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StatePresenting:
		return "presenting"
	case StateAllAnswered:
		return "all-answered"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Shuffle returns a new slice holding a uniform random permutation of
// words. The input is not mutated.
func Shuffle(words []models.WordEntry) []models.WordEntry {
	return shuffleWithRand(globalRand, words)
}

var globalRand = rand.New(rand.NewSource(rand.Int63()))

// Fisher-Yates over a copy.
func shuffleWithRand(r *rand.Rand, words []models.WordEntry) []models.WordEntry {
	shuffled := append([]models.WordEntry(nil), words...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Session tracks one review run over a unit.
type Session struct {
	grade     string
	unit      string
	words     []models.WordEntry
	answers   map[int]bool
	submitted bool
}

// New starts a session over a shuffled copy of words.
func New(grade, unit string, words []models.WordEntry) (*Session, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("unit %s/%s has no words to review", grade, unit)
	}
	return &Session{
		grade:   grade,
		unit:    unit,
		words:   Shuffle(words),
		answers: make(map[int]bool, len(words)),
	}, nil
}

// Words returns the session's presentation order.
func (s *Session) Words() []models.WordEntry {
	return s.words
}

// Answer grades the word at index. The first grade for an entry wins:
// answering an already-graded entry (or an out-of-range index, or a
// submitted session) returns false and changes nothing.
func (s *Session) Answer(index int, correct bool) bool {
	if s.submitted || index < 0 || index >= len(s.words) {
		return false
	}
	if _, done := s.answers[index]; done {
		return false
	}
	s.answers[index] = correct
	return true
}

// Answered reports whether the word at index has been graded.
func (s *Session) Answered(index int) bool {
	_, done := s.answers[index]
	return done
}

// Remaining returns how many words are still ungraded.
func (s *Session) Remaining() int {
	return len(s.words) - len(s.answers)
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	switch {
	case s.submitted:
		return StateSubmitted
	case len(s.answers) == len(s.words):
		return StateAllAnswered
	default:
		return StatePresenting
	}
}

// Results snapshots the graded outcomes in presentation order. Meanings
// are copied from the words as they were at review time.
func (s *Session) Results() []models.ReviewResult {
	results := make([]models.ReviewResult, len(s.words))
	for i, w := range s.words {
		results[i] = models.ReviewResult{
			Word:    w.Word,
			Meaning: w.Meaning,
			Correct: s.answers[i],
		}
	}
	return results
}

// Submit appends the session as a record. It requires every word to be
// graded and may succeed at most once; afterwards the session is terminal.
func (s *Session) Submit(ctx context.Context, recorder Recorder) (models.Record, error) {
	switch s.State() {
	case StateSubmitted:
		return models.Record{}, fmt.Errorf("session already submitted")
	case StatePresenting:
		return models.Record{}, fmt.Errorf("%d words still unanswered", s.Remaining())
	}

	record, err := recorder.AppendRecord(ctx, s.grade, s.unit, s.Results())
	if err != nil {
		return models.Record{}, err
	}
	s.submitted = true
	return record, nil
}
