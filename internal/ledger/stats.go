package ledger

import (
	"context"
	"math"

	"github.com/lmei/wordflash/internal/models"
)

// TodayStats aggregates the records dated today. The rate is a rounded
// percentage, defined as 0 when nothing was reviewed.
func (l *Ledger) TodayStats(ctx context.Context) (models.TodayStats, error) {
	records, err := l.RecordsByDate(ctx, l.today())
	if err != nil {
		return models.TodayStats{}, err
	}

	var stats models.TodayStats
	for _, record := range records {
		stats.TotalWords += len(record.Results)
		for _, result := range record.Results {
			if result.Correct {
				stats.CorrectWords++
			}
		}
	}
	if stats.TotalWords > 0 {
		stats.CorrectRate = int(math.Round(float64(stats.CorrectWords) / float64(stats.TotalWords) * 100))
	}
	return stats, nil
}

// ContinuousDays returns the current streak: consecutive calendar days
// ending today that each have at least one record. A day without a record
// today means the streak is 0, regardless of past streaks.
func (l *Ledger) ContinuousDays(ctx context.Context) (int, error) {
	records, err := l.loadRecords(ctx)
	if err != nil {
		return 0, err
	}

	studied := make(map[string]struct{}, len(records))
	for _, r := range records {
		studied[r.Date] = struct{}{}
	}

	streak := 0
	day := l.now()
	for {
		if _, ok := studied[day.Format(dateLayout)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

// TotalStudyDays counts the distinct dates with at least one record.
func (l *Ledger) TotalStudyDays(ctx context.Context) (int, error) {
	records, err := l.loadRecords(ctx)
	if err != nil {
		return 0, err
	}
	dates := map[string]struct{}{}
	for _, r := range records {
		dates[r.Date] = struct{}{}
	}
	return len(dates), nil
}

// CalendarData returns heat-map cells for the most recent days calendar
// days ending today, oldest first.
func (l *Ledger) CalendarData(ctx context.Context, days int) ([]models.CalendarDay, error) {
	calendar := []models.CalendarDay{}
	if days <= 0 {
		return calendar, nil
	}

	records, err := l.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, r := range records {
		counts[r.Date] += len(r.Results)
	}

	today := l.now()
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(dateLayout)
		count := counts[date]
		calendar = append(calendar, models.CalendarDay{
			Date:  date,
			Count: count,
			Level: calendarLevel(count),
		})
	}
	return calendar, nil
}

func calendarLevel(count int) int {
	switch {
	case count >= 30:
		return 3
	case count >= 15:
		return 2
	case count >= 1:
		return 1
	default:
		return 0
	}
}

// Overview bundles the home-view statistics in one read.
func (l *Ledger) Overview(ctx context.Context) (models.Overview, error) {
	today, err := l.TodayStats(ctx)
	if err != nil {
		return models.Overview{}, err
	}
	streak, err := l.ContinuousDays(ctx)
	if err != nil {
		return models.Overview{}, err
	}
	total, err := l.TotalStudyDays(ctx)
	if err != nil {
		return models.Overview{}, err
	}
	wrongCount, err := l.WrongWordCount(ctx)
	if err != nil {
		return models.Overview{}, err
	}
	return models.Overview{
		Today:          today,
		ContinuousDays: streak,
		TotalStudyDays: total,
		WrongWordCount: wrongCount,
	}, nil
}
