package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lmei/wordflash/internal/ledger"
	"github.com/lmei/wordflash/internal/models"
	"github.com/lmei/wordflash/internal/storage"
)

type StatsSuite struct {
	suite.Suite
	now    time.Time
	ledger *ledger.Ledger
}

func (s *StatsSuite) SetupTest() {
	s.now = time.Date(2024, 10, 22, 20, 0, 0, 0, time.Local)
	s.ledger = ledger.New(storage.NewMemoryStore(), ledger.WithClock(func() time.Time { return s.now }))
}

// recordOn appends a record with the given number of results, correct of them
// marked right, at the given day.
func (s *StatsSuite) recordOn(day time.Time, total, correct int) {
	prev := s.now
	s.now = day
	results := make([]models.ReviewResult, 0, total)
	for i := 0; i < total; i++ {
		results = append(results, models.ReviewResult{Word: "w", Correct: i < correct})
	}
	_, err := s.ledger.AppendRecord(context.Background(), "G1", "U1", results)
	s.Require().NoError(err)
	s.now = prev
}

func (s *StatsSuite) day(offset int) time.Time {
	return s.now.AddDate(0, 0, offset)
}

func (s *StatsSuite) TestTodayStatsEmpty() {
	stats, err := s.ledger.TodayStats(context.Background())
	s.Require().NoError(err)
	s.Equal(models.TodayStats{}, stats)
}

func (s *StatsSuite) TestTodayStatsAggregatesSessions() {
	s.recordOn(s.day(0), 10, 7)
	s.recordOn(s.day(0), 10, 8)
	s.recordOn(s.day(-1), 10, 0) // yesterday, out of scope

	stats, err := s.ledger.TodayStats(context.Background())
	s.Require().NoError(err)
	s.Equal(20, stats.TotalWords)
	s.Equal(15, stats.CorrectWords)
	s.Equal(75, stats.CorrectRate)
}

func (s *StatsSuite) TestTodayStatsRateRounds() {
	s.recordOn(s.day(0), 3, 2)

	stats, err := s.ledger.TodayStats(context.Background())
	s.Require().NoError(err)
	s.Equal(67, stats.CorrectRate)
}

func (s *StatsSuite) TestContinuousDays() {
	for _, offset := range []int{-2, -1, 0} {
		s.recordOn(s.day(offset), 5, 5)
	}

	days, err := s.ledger.ContinuousDays(context.Background())
	s.Require().NoError(err)
	s.Equal(3, days)
}

func (s *StatsSuite) TestContinuousDaysBrokenByToday() {
	// Streak ended yesterday. Counting anchors on today, so it reads zero.
	for _, offset := range []int{-3, -2, -1} {
		s.recordOn(s.day(offset), 5, 5)
	}

	days, err := s.ledger.ContinuousDays(context.Background())
	s.Require().NoError(err)
	s.Zero(days)
}

func (s *StatsSuite) TestContinuousDaysGapStopsWalk() {
	for _, offset := range []int{-4, -3, -1, 0} {
		s.recordOn(s.day(offset), 5, 5)
	}

	days, err := s.ledger.ContinuousDays(context.Background())
	s.Require().NoError(err)
	s.Equal(2, days)
}

func (s *StatsSuite) TestTotalStudyDays() {
	s.recordOn(s.day(-10), 5, 5)
	s.recordOn(s.day(-10), 5, 5) // same day counts once
	s.recordOn(s.day(0), 5, 5)

	total, err := s.ledger.TotalStudyDays(context.Background())
	s.Require().NoError(err)
	s.Equal(2, total)
}

func (s *StatsSuite) TestCalendarDataSingleDay() {
	s.recordOn(s.day(0), 20, 12)

	calendar, err := s.ledger.CalendarData(context.Background(), 1)
	s.Require().NoError(err)
	s.Require().Len(calendar, 1)
	s.Equal(models.CalendarDay{Date: "2024-10-22", Count: 20, Level: 2}, calendar[0])
}

func (s *StatsSuite) TestCalendarLevels() {
	s.recordOn(s.day(-3), 1, 1)
	s.recordOn(s.day(-2), 15, 15)
	s.recordOn(s.day(-1), 30, 30)

	calendar, err := s.ledger.CalendarData(context.Background(), 4)
	s.Require().NoError(err)
	s.Require().Len(calendar, 4)

	// Oldest first, ending on today.
	s.Equal(models.CalendarDay{Date: "2024-10-19", Count: 1, Level: 1}, calendar[0])
	s.Equal(models.CalendarDay{Date: "2024-10-20", Count: 15, Level: 2}, calendar[1])
	s.Equal(models.CalendarDay{Date: "2024-10-21", Count: 30, Level: 3}, calendar[2])
	s.Equal(models.CalendarDay{Date: "2024-10-22", Count: 0, Level: 0}, calendar[3])
}

func (s *StatsSuite) TestOverview() {
	s.recordOn(s.day(-1), 10, 5)
	s.recordOn(s.day(0), 10, 9)

	overview, err := s.ledger.Overview(context.Background())
	s.Require().NoError(err)
	s.Equal(10, overview.Today.TotalWords)
	s.Equal(90, overview.Today.CorrectRate)
	s.Equal(2, overview.ContinuousDays)
	s.Equal(2, overview.TotalStudyDays)
	// Every miss used the same word, so the index holds a single entry.
	s.Equal(1, overview.WrongWordCount)
}

func TestStatsSuite(t *testing.T) {
	suite.Run(t, new(StatsSuite))
}
