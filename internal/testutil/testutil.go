package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lmei/wordflash/internal/ledger"
	"github.com/lmei/wordflash/internal/storage"
)

// NewTestLedger creates a ledger over an in-memory document store with
// the clock pinned to now.
func NewTestLedger(t *testing.T, now time.Time) *ledger.Ledger {
	t.Helper()
	return ledger.New(storage.NewMemoryStore(), ledger.WithClock(func() time.Time { return now }))
}

// ParseDay parses a YYYY-MM-DD day at noon local time, so date arithmetic
// in tests never straddles midnight.
func ParseDay(t *testing.T, day string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", day+" 12:00:00", time.Local)
	require.NoError(t, err)
	return parsed
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	t.Helper()
	require.NoError(t, closer.Close())
}
