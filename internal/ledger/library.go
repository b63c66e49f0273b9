package ledger

import (
	"context"

	"github.com/lmei/wordflash/internal/logger"
	"github.com/lmei/wordflash/internal/models"
)

// Library returns the full word catalog. Absent storage yields an empty
// catalog, never nil.
func (l *Ledger) Library(ctx context.Context) (models.Library, error) {
	return l.loadLibrary(ctx)
}

// GradeUnits returns the units of one grade, or an empty map when the
// grade does not exist.
func (l *Ledger) GradeUnits(ctx context.Context, grade string) (models.Grade, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return nil, err
	}
	if units, ok := lib[grade]; ok {
		return units, nil
	}
	return models.Grade{}, nil
}

// UnitWords returns the words of one unit, or an empty list when the
// grade or unit does not exist.
func (l *Ledger) UnitWords(ctx context.Context, grade, unit string) (models.Unit, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return nil, err
	}
	if words, ok := lib[grade][unit]; ok {
		return words, nil
	}
	return models.Unit{}, nil
}

// AddGrade creates an empty grade. Returns false when the name is taken.
func (l *Ledger) AddGrade(ctx context.Context, name string) (bool, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return false, err
	}
	if _, exists := lib[name]; exists {
		return false, nil
	}
	lib[name] = models.Grade{}
	if err := l.saveLibrary(ctx, lib); err != nil {
		return false, err
	}
	logger.FromContext(ctx).Debug("grade added: %s", name)
	return true, nil
}

// DeleteGrade removes a grade and everything under it. Records and wrong
// words keep referencing the name as a display label only, so no further
// cleanup is needed.
func (l *Ledger) DeleteGrade(ctx context.Context, name string) (bool, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return false, err
	}
	if _, exists := lib[name]; !exists {
		return false, nil
	}
	delete(lib, name)
	if err := l.saveLibrary(ctx, lib); err != nil {
		return false, err
	}
	logger.FromContext(ctx).Debug("grade deleted: %s", name)
	return true, nil
}

// AddUnit creates an empty unit in a grade. Returns false when the grade
// is absent or the unit name is taken within that grade.
func (l *Ledger) AddUnit(ctx context.Context, grade, name string) (bool, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return false, err
	}
	units, ok := lib[grade]
	if !ok {
		return false, nil
	}
	if _, exists := units[name]; exists {
		return false, nil
	}
	units[name] = models.Unit{}
	if err := l.saveLibrary(ctx, lib); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteUnit removes a unit and its words.
func (l *Ledger) DeleteUnit(ctx context.Context, grade, unit string) (bool, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return false, err
	}
	units, ok := lib[grade]
	if !ok {
		return false, nil
	}
	if _, exists := units[unit]; !exists {
		return false, nil
	}
	delete(units, unit)
	if err := l.saveLibrary(ctx, lib); err != nil {
		return false, err
	}
	return true, nil
}

// RenameUnit moves a unit's words under a new name. Returns false when
// the old name is absent or the new name is already taken.
func (l *Ledger) RenameUnit(ctx context.Context, grade, oldName, newName string) (bool, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return false, err
	}
	units, ok := lib[grade]
	if !ok {
		return false, nil
	}
	words, exists := units[oldName]
	if !exists {
		return false, nil
	}
	if _, taken := units[newName]; taken {
		return false, nil
	}
	units[newName] = words
	delete(units, oldName)
	if err := l.saveLibrary(ctx, lib); err != nil {
		return false, err
	}
	return true, nil
}

// AddWord appends an entry to a unit. Returns false when the grade or
// unit is absent, or when the word already exists in that unit.
func (l *Ledger) AddWord(ctx context.Context, grade, unit string, entry models.WordEntry) (bool, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return false, err
	}
	units, ok := lib[grade]
	if !ok {
		return false, nil
	}
	words, exists := units[unit]
	if !exists {
		return false, nil
	}
	for _, w := range words {
		if w.Word == entry.Word {
			return false, nil
		}
	}
	units[unit] = append(words, entry)
	if err := l.saveLibrary(ctx, lib); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateWord replaces the first entry matching oldWord in place. It does
// not guard against the new word colliding with another entry in the same
// unit, so a rename can create duplicates.
func (l *Ledger) UpdateWord(ctx context.Context, grade, unit, oldWord string, entry models.WordEntry) (bool, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return false, err
	}
	words, ok := lib[grade][unit]
	if !ok {
		return false, nil
	}
	for i, w := range words {
		if w.Word == oldWord {
			words[i] = entry
			if err := l.saveLibrary(ctx, lib); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// DeleteWord removes every entry matching word from the unit (duplicates
// created via UpdateWord go together). Returns false when nothing matched.
func (l *Ledger) DeleteWord(ctx context.Context, grade, unit, word string) (bool, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return false, err
	}
	words, ok := lib[grade][unit]
	if !ok {
		return false, nil
	}
	kept := words[:0:0]
	for _, w := range words {
		if w.Word != word {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(words) {
		return false, nil
	}
	lib[grade][unit] = kept
	if err := l.saveLibrary(ctx, lib); err != nil {
		return false, err
	}
	return true, nil
}

// Initialize seeds the library with def when nothing is stored yet.
// Returns true when the seed was applied.
func (l *Ledger) Initialize(ctx context.Context, def models.Library) (bool, error) {
	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return false, err
	}
	if len(lib) > 0 || len(def) == 0 {
		return false, nil
	}
	if err := l.saveLibrary(ctx, def); err != nil {
		return false, err
	}
	logger.FromContext(ctx).Info("seeded default library: %d grades", len(def))
	return true, nil
}
