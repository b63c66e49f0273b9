package api

import (
	"net/http"

	"github.com/lmei/wordflash/internal/errors"
)

func (s *Server) handleWrongWords(w http.ResponseWriter, r *http.Request) {
	wrong, err := s.Ledger.WrongWords(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, wrong)
}

func (s *Server) handleRemoveWrongWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word string `json:"word"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Word == "" {
		handleError(w, r, errors.NewValidationError("word", "must not be empty"))
		return
	}

	// Removal is idempotent: marking an absent word mastered succeeds.
	if err := s.Ledger.RemoveWrongWord(r.Context(), req.Word); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRebuildWrongWords(w http.ResponseWriter, r *http.Request) {
	count, err := s.Ledger.RebuildWrongWords(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"count": count})
}
