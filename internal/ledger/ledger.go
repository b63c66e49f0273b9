// Package ledger implements the study ledger: the word library, the
// review record log, the wrong-word index, derived statistics, and
// backup. All durable state lives in three JSON documents behind the
// storage port, so every operation is a synchronous read-modify-write.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lmei/wordflash/internal/models"
	"github.com/lmei/wordflash/internal/storage"
)

// Document keys. These match the export payload field names so backups
// stay portable across builds.
const (
	keyWordLibrary = "wordLibrary"
	keyRecords     = "records"
	keyWrongWords  = "wrongWords"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Ledger is the single owner of all durable study state.
type Ledger struct {
	store storage.Store
	now   func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates a Ledger on top of the given store.
func New(store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Ledger) today() string {
	return l.now().Format(dateLayout)
}

// newRecordID builds a time-derived id with a random suffix. Collisions
// are accepted, not eliminated.
func newRecordID(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconv.FormatInt(t.UnixMilli(), 36) + suffix
}

func (l *Ledger) loadLibrary(ctx context.Context) (models.Library, error) {
	var lib models.Library
	if err := l.loadDocument(ctx, keyWordLibrary, &lib); err != nil {
		return nil, err
	}
	if lib == nil {
		lib = models.Library{}
	}
	return lib, nil
}

func (l *Ledger) saveLibrary(ctx context.Context, lib models.Library) error {
	return l.saveDocument(ctx, keyWordLibrary, lib)
}

func (l *Ledger) loadRecords(ctx context.Context) ([]models.Record, error) {
	var records []models.Record
	if err := l.loadDocument(ctx, keyRecords, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (l *Ledger) saveRecords(ctx context.Context, records []models.Record) error {
	return l.saveDocument(ctx, keyRecords, records)
}

func (l *Ledger) loadWrongWords(ctx context.Context) ([]models.WrongWordEntry, error) {
	var wrong []models.WrongWordEntry
	if err := l.loadDocument(ctx, keyWrongWords, &wrong); err != nil {
		return nil, err
	}
	return wrong, nil
}

func (l *Ledger) saveWrongWords(ctx context.Context, wrong []models.WrongWordEntry) error {
	return l.saveDocument(ctx, keyWrongWords, wrong)
}

// loadDocument decodes the document for key into out. An absent document
// leaves out at its zero value.
func (l *Ledger) loadDocument(ctx context.Context, key string, out any) error {
	raw, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode %s document: %w", key, err)
	}
	return nil
}

func (l *Ledger) saveDocument(ctx context.Context, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", key, err)
	}
	return l.store.Set(ctx, key, string(raw))
}
