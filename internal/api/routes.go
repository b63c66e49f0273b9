package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes builds the router. Mutations are POST with JSON bodies so grade,
// unit, and word names never need URL escaping.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/library", s.handleLibrary)
		r.Post("/library/grades", s.handleAddGrade)
		r.Post("/library/grades/delete", s.handleDeleteGrade)
		r.Post("/library/units", s.handleAddUnit)
		r.Post("/library/units/delete", s.handleDeleteUnit)
		r.Post("/library/units/rename", s.handleRenameUnit)
		r.Post("/library/words", s.handleAddWord)
		r.Post("/library/words/update", s.handleUpdateWord)
		r.Post("/library/words/delete", s.handleDeleteWord)
		r.Post("/library/words/import", s.handleImportWords)

		r.Get("/records", s.handleRecords)
		r.Post("/records", s.handleAppendRecord)
		r.Get("/records/word-history", s.handleWordHistory)

		r.Get("/wrongwords", s.handleWrongWords)
		r.Post("/wrongwords/remove", s.handleRemoveWrongWord)
		r.Post("/wrongwords/rebuild", s.handleRebuildWrongWords)

		r.Get("/stats/today", s.handleTodayStats)
		r.Get("/stats/overview", s.handleOverview)
		r.Get("/stats/calendar", s.handleCalendar)

		r.Get("/backup/export", s.handleExport)
		r.Post("/backup/import", s.handleImportBackup)
		r.Post("/backup/wipe", s.handleWipe)
	})

	return r
}
