package api

import (
	"io"
	"net/http"

	"github.com/lmei/wordflash/internal/errors"
	"github.com/lmei/wordflash/internal/logger"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	payload, err := s.Ledger.Export(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="wordflash-backup.json"`)
	respondJSON(w, http.StatusOK, payload)
}

func (s *Server) handleImportBackup(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("failed to read request body"))
		return
	}

	if err := s.Ledger.ImportBackup(r.Context(), raw); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

func (s *Server) handleWipe(w http.ResponseWriter, r *http.Request) {
	if err := s.Ledger.Wipe(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Warn("study data wiped via API")
	w.WriteHeader(http.StatusNoContent)
}
