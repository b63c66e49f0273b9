package ledger

import (
	"context"
	"sort"

	"github.com/lmei/wordflash/internal/logger"
	"github.com/lmei/wordflash/internal/models"
)

// AppendRecord stores one completed review session and updates the
// wrong-word index from its incorrect results. The record is written
// before the index so a failure between the two can only lose index
// updates, which RebuildWrongWords can recover.
func (l *Ledger) AppendRecord(ctx context.Context, grade, unit string, results []models.ReviewResult) (models.Record, error) {
	log := logger.FromContext(ctx)

	records, err := l.loadRecords(ctx)
	if err != nil {
		return models.Record{}, err
	}

	now := l.now()
	record := models.Record{
		ID:        newRecordID(now),
		Date:      now.Format(dateLayout),
		Time:      now.Format(timeLayout),
		Timestamp: now.UnixMilli(),
		Grade:     grade,
		Unit:      unit,
		Results:   append([]models.ReviewResult(nil), results...),
	}

	records = append(records, record)
	if err := l.saveRecords(ctx, records); err != nil {
		return models.Record{}, err
	}
	if err := l.indexWrongAnswers(ctx, grade, unit, record.Results, record.Date); err != nil {
		return models.Record{}, err
	}

	log.Info("record appended: id=%s grade=%s unit=%s words=%d", record.ID, grade, unit, len(record.Results))
	return record, nil
}

// Records returns the full record log in insertion order.
func (l *Ledger) Records(ctx context.Context) ([]models.Record, error) {
	return l.loadRecords(ctx)
}

// RecordsByDate returns the records stamped with the given YYYY-MM-DD date.
func (l *Ledger) RecordsByDate(ctx context.Context, date string) ([]models.Record, error) {
	records, err := l.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.Record{}
	for _, r := range records {
		if r.Date == date {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// WordHistory returns one entry per record containing the word (first
// matching result per record), newest first.
func (l *Ledger) WordHistory(ctx context.Context, word string) ([]models.WordHistoryEntry, error) {
	records, err := l.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	history := []models.WordHistoryEntry{}
	for _, record := range records {
		for _, result := range record.Results {
			if result.Word == word {
				history = append(history, models.WordHistoryEntry{
					Date:    record.Date,
					Time:    record.Time,
					Grade:   record.Grade,
					Unit:    record.Unit,
					Correct: result.Correct,
				})
				break
			}
		}
	}

	// YYYY-MM-DD HH:MM:SS sorts chronologically as a string.
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date+" "+history[i].Time > history[j].Date+" "+history[j].Time
	})
	return history, nil
}
