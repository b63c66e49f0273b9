package api

import (
	"net/http"
	"sort"

	"github.com/lmei/wordflash/internal/errors"
	"github.com/lmei/wordflash/internal/models"
)

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	var (
		records []models.Record
		err     error
	)
	if date := r.URL.Query().Get("date"); date != "" {
		records, err = s.Ledger.RecordsByDate(r.Context(), date)
	} else {
		records, err = s.Ledger.Records(r.Context())
	}
	if err != nil {
		handleError(w, r, err)
		return
	}
	if records == nil {
		records = []models.Record{}
	}

	// Display order is newest first.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	respondJSON(w, http.StatusOK, records)
}

func (s *Server) handleAppendRecord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade   string                `json:"grade"`
		Unit    string                `json:"unit"`
		Results []models.ReviewResult `json:"results"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if len(req.Results) == 0 {
		handleError(w, r, errors.NewValidationError("results", "must not be empty"))
		return
	}
	for _, result := range req.Results {
		if result.Word == "" {
			handleError(w, r, errors.NewValidationError("results", "every result needs a word"))
			return
		}
	}

	record, err := s.Ledger.AppendRecord(r.Context(), req.Grade, req.Unit, req.Results)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, record)
}

func (s *Server) handleWordHistory(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		handleError(w, r, errors.NewBadRequestError("missing word parameter"))
		return
	}

	history, err := s.Ledger.WordHistory(r.Context(), word)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}
