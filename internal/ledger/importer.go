package ledger

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/lmei/wordflash/internal/errors"
	"github.com/lmei/wordflash/internal/logger"
	"github.com/lmei/wordflash/internal/models"
)

// pronunciationRe matches slash-delimited phonetic notation, e.g. /ˈæpl/.
var pronunciationRe = regexp.MustCompile(`/[^/]+/`)

// ImportWords bulk-imports words from raw text into an existing unit.
// Two line formats are accepted:
//
//	word-meaning[-pronunciation]
//	word /pronunciation/ meaning...
//
// Lines are independent: a bad line is reported with its 1-based line
// number and never aborts the batch.
func (l *Ledger) ImportWords(ctx context.Context, grade, unit, text string) (models.ImportReport, error) {
	log := logger.FromContext(ctx)

	lib, err := l.loadLibrary(ctx)
	if err != nil {
		return models.ImportReport{}, err
	}
	words, ok := lib[grade][unit]
	if !ok {
		return models.ImportReport{}, errors.NewNotFoundError("unit", grade+"/"+unit)
	}

	existing := make(map[string]struct{}, len(words))
	for _, w := range words {
		existing[w.Word] = struct{}{}
	}

	report := models.ImportReport{Errors: []string{}}
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		entry, perr := parseImportLine(line)
		if perr != nil {
			report.FailedCount++
			report.Errors = append(report.Errors, fmt.Sprintf("line %d: %v", i+1, perr))
			continue
		}
		if _, dup := existing[entry.Word]; dup {
			report.FailedCount++
			report.Errors = append(report.Errors, fmt.Sprintf("line %d: word %q already exists in unit", i+1, entry.Word))
			continue
		}
		words = append(words, entry)
		existing[entry.Word] = struct{}{}
		report.SuccessCount++
	}

	lib[grade][unit] = words
	if err := l.saveLibrary(ctx, lib); err != nil {
		return models.ImportReport{}, err
	}

	log.Info("bulk import into %s/%s: %d ok, %d failed", grade, unit, report.SuccessCount, report.FailedCount)
	return report, nil
}

func parseImportLine(line string) (models.WordEntry, error) {
	var entry models.WordEntry

	if strings.Contains(line, "-") {
		parts := strings.Split(line, "-")
		if len(parts) < 2 {
			return entry, fmt.Errorf("invalid format: %q", line)
		}
		entry.Word = strings.TrimSpace(parts[0])
		entry.Meaning = strings.TrimSpace(parts[1])
		if len(parts) >= 3 {
			entry.Pronunciation = strings.TrimSpace(parts[2])
		}
	} else {
		rest := line
		if pron := pronunciationRe.FindString(rest); pron != "" {
			entry.Pronunciation = pron
			rest = strings.Replace(rest, pron, " ", 1)
		}
		tokens := strings.Fields(rest)
		if len(tokens) < 2 {
			return entry, fmt.Errorf("invalid format: %q", line)
		}
		entry.Word = tokens[0]
		entry.Meaning = strings.Join(tokens[1:], " ")
	}

	if entry.Word == "" || entry.Meaning == "" {
		return entry, fmt.Errorf("empty word or meaning: %q", line)
	}
	return entry, nil
}
