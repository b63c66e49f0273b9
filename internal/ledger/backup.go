package ledger

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/lmei/wordflash/internal/errors"
	"github.com/lmei/wordflash/internal/logger"
	"github.com/lmei/wordflash/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// importPayload mirrors ExportPayload with pointer fields so a key absent
// from the backup leaves that store untouched.
type importPayload struct {
	WordLibrary *models.Library          `json:"wordLibrary" validate:"omitempty,dive,dive,dive"`
	Records     *[]models.Record         `json:"records" validate:"omitempty,dive"`
	WrongWords  *[]models.WrongWordEntry `json:"wrongWords" validate:"omitempty,dive"`
	ExportDate  string                   `json:"exportDate"`
}

// Export bundles all three documents into a single backup payload.
func (l *Ledger) Export(ctx context.Context) (models.ExportPayload, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return models.ExportPayload{}, err
	}
	records, err := l.loadRecords(ctx)
	if err != nil {
		return models.ExportPayload{}, err
	}
	if records == nil {
		records = []models.Record{}
	}
	wrong, err := l.WrongWords(ctx)
	if err != nil {
		return models.ExportPayload{}, err
	}

	return models.ExportPayload{
		WordLibrary: lib,
		Records:     records,
		WrongWords:  wrong,
		ExportDate:  l.now().UTC().Format(time.RFC3339),
	}, nil
}

// ImportBackup restores a backup payload. The payload is parsed and
// schema-validated as a whole before any store is touched; after that,
// each top-level key present performs a full overwrite of its document,
// and absent keys are skipped.
func (l *Ledger) ImportBackup(ctx context.Context, raw []byte) error {
	log := logger.FromContext(ctx)

	var payload importPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return errors.NewBadRequestError("format invalid")
	}
	if err := validate.Struct(payload); err != nil {
		return errors.NewValidationError("backup", err.Error())
	}

	if payload.WordLibrary != nil {
		if err := l.saveLibrary(ctx, *payload.WordLibrary); err != nil {
			return err
		}
	}
	if payload.Records != nil {
		if err := l.saveRecords(ctx, *payload.Records); err != nil {
			return err
		}
	}
	if payload.WrongWords != nil {
		if err := l.saveWrongWords(ctx, *payload.WrongWords); err != nil {
			return err
		}
	}

	log.Info("backup imported: library=%t records=%t wrongWords=%t",
		payload.WordLibrary != nil, payload.Records != nil, payload.WrongWords != nil)
	return nil
}

// Wipe clears all three documents unconditionally.
func (l *Ledger) Wipe(ctx context.Context) error {
	for _, key := range []string{keyWordLibrary, keyRecords, keyWrongWords} {
		if err := l.store.Remove(ctx, key); err != nil {
			return err
		}
	}
	logger.FromContext(ctx).Warn("all study data wiped")
	return nil
}
