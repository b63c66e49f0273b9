// Package models defines the document shapes persisted by the study ledger.
// JSON field names follow the on-disk document schema, so an export produced
// by one build imports cleanly into another.
package models

// WordEntry is a single word inside a unit. Identity within a unit is the
// Word field itself (case-sensitive exact match), not a generated id.
type WordEntry struct {
	Word          string `json:"word" validate:"required"`
	Meaning       string `json:"meaning"`
	Pronunciation string `json:"pronunciation,omitempty"`
}

// Unit is the list of words under one unit name.
type Unit []WordEntry

// Grade maps unit name to its words.
type Grade map[string]Unit

// Library maps grade name to its units. It is the single source of truth
// for what can be reviewed.
type Library map[string]Grade

// ReviewResult is a snapshot of one graded word taken at review time.
// Meaning is copied, not referenced, so later library edits do not
// retroactively alter history.
type ReviewResult struct {
	Word    string `json:"word" validate:"required"`
	Meaning string `json:"meaning"`
	Correct bool   `json:"correct"`
}

// Record is an immutable snapshot of one completed review session.
type Record struct {
	ID        string         `json:"id" validate:"required"`
	Date      string         `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string         `json:"time" validate:"required"`
	Timestamp int64          `json:"timestamp"`
	Grade     string         `json:"grade"`
	Unit      string         `json:"unit"`
	Results   []ReviewResult `json:"results" validate:"dive"`
}

// WrongWordSource identifies where a word was being reviewed when it was
// answered incorrectly.
type WrongWordSource struct {
	Grade string `json:"grade"`
	Unit  string `json:"unit"`
}

// WrongWordEntry aggregates the incorrect answers for one word since the
// entry was last removed.
type WrongWordEntry struct {
	Word          string            `json:"word" validate:"required"`
	Meaning       string            `json:"meaning"`
	Sources       []WrongWordSource `json:"sources"`
	ErrorCount    int               `json:"errorCount" validate:"min=1"`
	LastErrorDate string            `json:"lastErrorDate"`
}

// WordHistoryEntry is one review outcome for a word, derived from the
// record log.
type WordHistoryEntry struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Grade   string `json:"grade"`
	Unit    string `json:"unit"`
	Correct bool   `json:"correct"`
}

// TodayStats aggregates the records dated today.
type TodayStats struct {
	TotalWords   int `json:"totalWords"`
	CorrectWords int `json:"correctWords"`
	CorrectRate  int `json:"correctRate"`
}

// CalendarDay is one cell of the study heat-map. Level buckets daily
// volume: 0 none, 1 under 15, 2 under 30, 3 at or above 30.
type CalendarDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// Overview bundles the home-view statistics.
type Overview struct {
	Today          TodayStats `json:"today"`
	ContinuousDays int        `json:"continuousDays"`
	TotalStudyDays int        `json:"totalStudyDays"`
	WrongWordCount int        `json:"wrongWordCount"`
}

// ImportReport summarizes a bulk text import. Errors carry 1-based line
// numbers in input order.
type ImportReport struct {
	SuccessCount int      `json:"successCount"`
	FailedCount  int      `json:"failedCount"`
	Errors       []string `json:"errors"`
}

// ExportPayload is the full-data backup document.
type ExportPayload struct {
	WordLibrary Library          `json:"wordLibrary"`
	Records     []Record         `json:"records"`
	WrongWords  []WrongWordEntry `json:"wrongWords"`
	ExportDate  string           `json:"exportDate"`
}
