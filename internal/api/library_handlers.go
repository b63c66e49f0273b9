package api

import (
	"net/http"
	"strings"

	"github.com/lmei/wordflash/internal/errors"
	"github.com/lmei/wordflash/internal/logger"
	"github.com/lmei/wordflash/internal/models"
)

func (s *Server) handleLibrary(w http.ResponseWriter, r *http.Request) {
	lib, err := s.Ledger.Library(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, lib)
}

func (s *Server) handleAddGrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		handleError(w, r, errors.NewValidationError("name", "must not be empty"))
		return
	}

	ok, err := s.Ledger.AddGrade(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !ok {
		handleError(w, r, errors.NewConflictError("grade already exists"))
		return
	}
	logger.FromContext(r.Context()).Info("grade created: %s", req.Name)
	respondJSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

func (s *Server) handleDeleteGrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	ok, err := s.Ledger.DeleteGrade(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !ok {
		handleError(w, r, errors.NewNotFoundError("grade", req.Name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddUnit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade string `json:"grade"`
		Name  string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		handleError(w, r, errors.NewValidationError("name", "must not be empty"))
		return
	}

	ok, err := s.Ledger.AddUnit(r.Context(), req.Grade, req.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !ok {
		// The ledger cannot distinguish a missing grade from a taken name.
		handleError(w, r, errors.NewConflictError("grade not found or unit already exists"))
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"grade": req.Grade, "name": req.Name})
}

func (s *Server) handleDeleteUnit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade string `json:"grade"`
		Unit  string `json:"unit"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	ok, err := s.Ledger.DeleteUnit(r.Context(), req.Grade, req.Unit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !ok {
		handleError(w, r, errors.NewNotFoundError("unit", req.Grade+"/"+req.Unit))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenameUnit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade   string `json:"grade"`
		OldName string `json:"oldName"`
		NewName string `json:"newName"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.NewName) == "" {
		handleError(w, r, errors.NewValidationError("newName", "must not be empty"))
		return
	}

	ok, err := s.Ledger.RenameUnit(r.Context(), req.Grade, req.OldName, req.NewName)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !ok {
		handleError(w, r, errors.NewConflictError("unit not found or new name already taken"))
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"grade": req.Grade, "name": req.NewName})
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade string `json:"grade"`
		Unit  string `json:"unit"`
		models.WordEntry
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Word) == "" || strings.TrimSpace(req.Meaning) == "" {
		handleError(w, r, errors.NewValidationError("word", "word and meaning must not be empty"))
		return
	}

	ok, err := s.Ledger.AddWord(r.Context(), req.Grade, req.Unit, req.WordEntry)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !ok {
		handleError(w, r, errors.NewConflictError("unit not found or word already exists"))
		return
	}
	respondJSON(w, http.StatusCreated, req.WordEntry)
}

func (s *Server) handleUpdateWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade   string           `json:"grade"`
		Unit    string           `json:"unit"`
		OldWord string           `json:"oldWord"`
		Entry   models.WordEntry `json:"entry"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Entry.Word) == "" {
		handleError(w, r, errors.NewValidationError("entry.word", "must not be empty"))
		return
	}

	ok, err := s.Ledger.UpdateWord(r.Context(), req.Grade, req.Unit, req.OldWord, req.Entry)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !ok {
		handleError(w, r, errors.NewNotFoundError("word", req.OldWord))
		return
	}
	respondJSON(w, http.StatusOK, req.Entry)
}

func (s *Server) handleDeleteWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade string `json:"grade"`
		Unit  string `json:"unit"`
		Word  string `json:"word"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	ok, err := s.Ledger.DeleteWord(r.Context(), req.Grade, req.Unit, req.Word)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !ok {
		handleError(w, r, errors.NewNotFoundError("word", req.Word))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleImportWords(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade string `json:"grade"`
		Unit  string `json:"unit"`
		Text  string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	report, err := s.Ledger.ImportWords(r.Context(), req.Grade, req.Unit, req.Text)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
