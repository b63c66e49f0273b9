package ledger

import (
	"context"
	"sort"

	"github.com/lmei/wordflash/internal/logger"
	"github.com/lmei/wordflash/internal/models"
)

// indexWrongAnswers folds the incorrect results of one session into the
// wrong-word index: existing entries get their count bumped, their last
// error date refreshed, and the session's grade/unit appended as a source
// if new; unseen words start at errorCount 1.
func (l *Ledger) indexWrongAnswers(ctx context.Context, grade, unit string, results []models.ReviewResult, date string) error {
	wrong, err := l.loadWrongWords(ctx)
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.Correct {
			continue
		}
		wrong = applyWrongAnswer(wrong, result, grade, unit, date)
	}

	return l.saveWrongWords(ctx, wrong)
}

func applyWrongAnswer(wrong []models.WrongWordEntry, result models.ReviewResult, grade, unit, date string) []models.WrongWordEntry {
	for i := range wrong {
		if wrong[i].Word != result.Word {
			continue
		}
		wrong[i].ErrorCount++
		wrong[i].LastErrorDate = date
		if !hasSource(wrong[i].Sources, grade, unit) {
			wrong[i].Sources = append(wrong[i].Sources, models.WrongWordSource{Grade: grade, Unit: unit})
		}
		return wrong
	}
	return append(wrong, models.WrongWordEntry{
		Word:          result.Word,
		Meaning:       result.Meaning,
		Sources:       []models.WrongWordSource{{Grade: grade, Unit: unit}},
		ErrorCount:    1,
		LastErrorDate: date,
	})
}

func hasSource(sources []models.WrongWordSource, grade, unit string) bool {
	for _, s := range sources {
		if s.Grade == grade && s.Unit == unit {
			return true
		}
	}
	return false
}

// WrongWords returns the wrong-word index.
func (l *Ledger) WrongWords(ctx context.Context) ([]models.WrongWordEntry, error) {
	wrong, err := l.loadWrongWords(ctx)
	if err != nil {
		return nil, err
	}
	if wrong == nil {
		wrong = []models.WrongWordEntry{}
	}
	return wrong, nil
}

// RemoveWrongWord deletes the entry for word ("mark as mastered").
// Removal is history-blind: a future incorrect answer recreates the entry
// from errorCount 1. Removing an absent word is a no-op.
func (l *Ledger) RemoveWrongWord(ctx context.Context, word string) error {
	wrong, err := l.loadWrongWords(ctx)
	if err != nil {
		return err
	}
	kept := wrong[:0:0]
	for _, w := range wrong {
		if w.Word != word {
			kept = append(kept, w)
		}
	}
	if err := l.saveWrongWords(ctx, kept); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("wrong word removed: %s", word)
	return nil
}

// WrongWordCount returns the number of indexed wrong words.
func (l *Ledger) WrongWordCount(ctx context.Context) (int, error) {
	wrong, err := l.loadWrongWords(ctx)
	if err != nil {
		return 0, err
	}
	return len(wrong), nil
}

// RebuildWrongWords re-derives the index from the full record log, in
// record order. This is an explicit recovery operation: it resurrects
// entries the user removed, since removal keeps no tombstone.
func (l *Ledger) RebuildWrongWords(ctx context.Context) (int, error) {
	records, err := l.loadRecords(ctx)
	if err != nil {
		return 0, err
	}

	ordered := append([]models.Record(nil), records...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp < ordered[j].Timestamp
	})

	rebuilt := []models.WrongWordEntry{}
	for _, record := range ordered {
		for _, result := range record.Results {
			if result.Correct {
				continue
			}
			rebuilt = applyWrongAnswer(rebuilt, result, record.Grade, record.Unit, record.Date)
		}
	}

	if err := l.saveWrongWords(ctx, rebuilt); err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info("wrong-word index rebuilt: %d entries from %d records", len(rebuilt), len(records))
	return len(rebuilt), nil
}
