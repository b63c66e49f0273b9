package api

import (
	"net/http"
	"strconv"

	"github.com/lmei/wordflash/internal/errors"
)

const (
	defaultCalendarDays = 28
	maxCalendarDays     = 366
)

func (s *Server) handleTodayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Ledger.TodayStats(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.Ledger.Overview(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	days := defaultCalendarDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			handleError(w, r, errors.NewBadRequestError("days must be a positive integer"))
			return
		}
		days = parsed
	}
	if days > maxCalendarDays {
		days = maxCalendarDays
	}

	calendar, err := s.Ledger.CalendarData(r.Context(), days)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, calendar)
}
