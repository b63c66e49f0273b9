package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmei/wordflash/internal/models"
	"github.com/lmei/wordflash/internal/seed"
	"github.com/lmei/wordflash/internal/testutil"
)

func TestAddGrade_DuplicateFails(t *testing.T) {
	ctx := context.Background()
	l := testutil.NewTestLedger(t, time.Now())

	ok, err := l.AddGrade(ctx, "三年级上册")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.AddGrade(ctx, "三年级上册")
	require.NoError(t, err)
	assert.False(t, ok, "second add with same name should fail")

	lib, err := l.Library(ctx)
	require.NoError(t, err)
	assert.Len(t, lib, 1)
}

func TestAddWord_UniqueWithinUnit(t *testing.T) {
	ctx := context.Background()
	l := testutil.NewTestLedger(t, time.Now())

	ok, err := l.AddGrade(ctx, "G1")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = l.AddUnit(ctx, "G1", "U1")
	require.NoError(t, err)
	require.True(t, ok)

	entry := models.WordEntry{Word: "apple", Meaning: "苹果", Pronunciation: "/ˈæpl/"}
	ok, err = l.AddWord(ctx, "G1", "U1", entry)
	require.NoError(t, err)
	assert.True(t, ok)

	words, err := l.UnitWords(ctx, "G1", "U1")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, entry, words[0])

	// Same word again must fail and leave the unit unchanged.
	ok, err = l.AddWord(ctx, "G1", "U1", models.WordEntry{Word: "apple", Meaning: "other"})
	require.NoError(t, err)
	assert.False(t, ok)

	words, err = l.UnitWords(ctx, "G1", "U1")
	require.NoError(t, err)
	assert.Len(t, words, 1)
	assert.Equal(t, "苹果", words[0].Meaning)
}

func TestAddWord_SameWordInDifferentUnits(t *testing.T) {
	ctx := context.Background()
	l := testutil.NewTestLedger(t, time.Now())

	_, err := l.AddGrade(ctx, "G1")
	require.NoError(t, err)
	for _, unit := range []string{"U1", "U2"} {
		ok, err := l.AddUnit(ctx, "G1", unit)
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = l.AddWord(ctx, "G1", unit, models.WordEntry{Word: "dog", Meaning: "狗"})
		require.NoError(t, err)
		assert.True(t, ok, "word uniqueness is per unit")
	}
}

func TestAddWord_MissingUnitFails(t *testing.T) {
	ctx := context.Background()
	l := testutil.NewTestLedger(t, time.Now())

	ok, err := l.AddWord(ctx, "nope", "U1", models.WordEntry{Word: "x", Meaning: "y"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteWord_Idempotent(t *testing.T) {
	ctx := context.Background()
	l := testutil.NewTestLedger(t, time.Now())

	_, err := l.AddGrade(ctx, "G1")
	require.NoError(t, err)
	_, err = l.AddUnit(ctx, "G1", "U1")
	require.NoError(t, err)

	ok, err := l.DeleteWord(ctx, "G1", "U1", "ghost")
	require.NoError(t, err)
	assert.False(t, ok, "deleting a non-existent word is a no-op")
}

func TestUpdateWord_RenameCanCreateDuplicates(t *testing.T) {
	ctx := context.Background()
	l := testutil.NewTestLedger(t, time.Now())

	_, err := l.AddGrade(ctx, "G1")
	require.NoError(t, err)
	_, err = l.AddUnit(ctx, "G1", "U1")
	require.NoError(t, err)
	_, err = l.AddWord(ctx, "G1", "U1", models.WordEntry{Word: "cat", Meaning: "猫"})
	require.NoError(t, err)
	_, err = l.AddWord(ctx, "G1", "U1", models.WordEntry{Word: "dog", Meaning: "狗"})
	require.NoError(t, err)

	// Renaming dog to cat is not collision-checked.
	ok, err := l.UpdateWord(ctx, "G1", "U1", "dog", models.WordEntry{Word: "cat", Meaning: "狗"})
	require.NoError(t, err)
	assert.True(t, ok)

	words, err := l.UnitWords(ctx, "G1", "U1")
	require.NoError(t, err)
	assert.Len(t, words, 2)

	// DeleteWord filters every match, so both duplicates go at once.
	ok, err = l.DeleteWord(ctx, "G1", "U1", "cat")
	require.NoError(t, err)
	assert.True(t, ok)

	words, err = l.UnitWords(ctx, "G1", "U1")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestUpdateWord_NotFound(t *testing.T) {
	ctx := context.Background()
	l := testutil.NewTestLedger(t, time.Now())

	_, err := l.AddGrade(ctx, "G1")
	require.NoError(t, err)
	_, err = l.AddUnit(ctx, "G1", "U1")
	require.NoError(t, err)

	ok, err := l.UpdateWord(ctx, "G1", "U1", "ghost", models.WordEntry{Word: "new", Meaning: "m"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRenameUnit(t *testing.T) {
	ctx := context.Background()
	l := testutil.NewTestLedger(t, time.Now())

	_, err := l.AddGrade(ctx, "G1")
	require.NoError(t, err)
	_, err = l.AddUnit(ctx, "G1", "U1")
	require.NoError(t, err)
	_, err = l.AddUnit(ctx, "G1", "U2")
	require.NoError(t, err)
	_, err = l.AddWord(ctx, "G1", "U1", models.WordEntry{Word: "cat", Meaning: "猫"})
	require.NoError(t, err)

	ok, err := l.RenameUnit(ctx, "G1", "U1", "U2")
	require.NoError(t, err)
	assert.False(t, ok, "rename onto a taken name must fail")

	ok, err = l.RenameUnit(ctx, "G1", "missing", "U3")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.RenameUnit(ctx, "G1", "U1", "U9")
	require.NoError(t, err)
	assert.True(t, ok)

	words, err := l.UnitWords(ctx, "G1", "U9")
	require.NoError(t, err)
	assert.Len(t, words, 1, "words move with the renamed unit")

	words, err = l.UnitWords(ctx, "G1", "U1")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestDeleteGrade_Cascades(t *testing.T) {
	ctx := context.Background()
	l := testutil.NewTestLedger(t, time.Now())

	_, err := l.AddGrade(ctx, "G1")
	require.NoError(t, err)
	_, err = l.AddUnit(ctx, "G1", "U1")
	require.NoError(t, err)
	_, err = l.AddWord(ctx, "G1", "U1", models.WordEntry{Word: "cat", Meaning: "猫"})
	require.NoError(t, err)

	ok, err := l.DeleteGrade(ctx, "G1")
	require.NoError(t, err)
	assert.True(t, ok)

	lib, err := l.Library(ctx)
	require.NoError(t, err)
	assert.Empty(t, lib)

	ok, err = l.DeleteGrade(ctx, "G1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInitialize_OnlySeedsEmptyLibrary(t *testing.T) {
	ctx := context.Background()
	l := testutil.NewTestLedger(t, time.Now())

	seeded, err := l.Initialize(ctx, seed.DefaultLibrary())
	require.NoError(t, err)
	assert.True(t, seeded)

	words, err := l.UnitWords(ctx, "三年级上册", "Unit 1")
	require.NoError(t, err)
	assert.NotEmpty(t, words)

	seeded, err = l.Initialize(ctx, seed.DefaultLibrary())
	require.NoError(t, err)
	assert.False(t, seeded, "a non-empty library must not be reseeded")
}
