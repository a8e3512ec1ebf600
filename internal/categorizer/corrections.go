package categorizer

import (
	"strings"

	"rsharma/phonepe-csv/internal/logging"
	"rsharma/phonepe-csv/internal/models"
)

// Correction is one user edit from the presentation layer: a row index
// into the batch, the category previously assigned to that row, and the
// replacement the user chose.
type Correction struct {
	Row      int
	Previous string
	New      string
}

// BuildCorrections diffs an edited batch against the originally
// categorized batch. Rows are aligned by position, not by content, so
// duplicate counterparty names stay independent. Rows whose edited
// category is empty or whitespace-only, or unchanged, produce no
// correction.
func BuildCorrections(original, edited []models.Transaction) []Correction {
	n := len(original)
	if len(edited) < n {
		n = len(edited)
	}

	var corrections []Correction
	for i := 0; i < n; i++ {
		newCategory := strings.TrimSpace(edited[i].Category)
		if newCategory == "" || newCategory == original[i].Category {
			continue
		}
		corrections = append(corrections, Correction{
			Row:      i,
			Previous: original[i].Category,
			New:      newCategory,
		})
	}
	return corrections
}

// ApplyCorrections learns from each correction and, if anything changed,
// persists the name map and recategorizes the entire batch. The full
// re-run is deliberate: newly learned keywords can retroactively
// reclassify unrelated rows, and the batch must reflect that
// consistently.
//
// Returns whether any row changed. A persistence failure is returned
// before recategorization so the caller never sees categories derived
// from state that did not reach disk.
func (e *Engine) ApplyCorrections(batch []models.Transaction, corrections []Correction) (bool, error) {
	changed := false
	for _, c := range corrections {
		if c.Row < 0 || c.Row >= len(batch) {
			e.logger.Warn("Ignoring correction with out-of-range row",
				logging.Field{Key: logging.FieldRow, Value: c.Row})
			continue
		}
		newCategory := strings.TrimSpace(c.New)
		if newCategory == "" {
			continue
		}

		e.Learn(batch[c.Row].Name, newCategory)
		changed = true
	}

	if !changed {
		return false, nil
	}

	if err := e.SaveMappings(); err != nil {
		return false, err
	}
	e.CategorizeAll(batch)

	e.logger.Info("Applied corrections and recategorized batch",
		logging.Field{Key: logging.FieldCount, Value: len(corrections)})
	return true, nil
}
