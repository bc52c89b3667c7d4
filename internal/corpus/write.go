package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/springkeys/quotectl/internal/quote"
)

// DefaultDir is the corpus location the SpringKeys trainer reads from,
// relative to the repository root.
const DefaultDir = "quotes/categories"

// Writer merges extracted quotes into per-category partition files.
type Writer struct {
	// Dir is the corpus directory. Created on first write if absent.
	Dir string

	// Files optionally overrides the filename for a category. Categories
	// not present fall back to their static filename.
	Files map[quote.Category]string
}

// MergeResult describes what Merge did for one category.
type MergeResult struct {
	Category quote.Category `json:"category"`
	Path     string         `json:"path,omitempty"`
	Existing int            `json:"existing"` // records already in the file
	Added    int            `json:"added"`    // new records appended
	Total    int            `json:"total"`    // records in the file after the merge
	Created  bool           `json:"created"`  // file did not exist before
	Skipped  bool           `json:"skipped"`  // nothing to write, file untouched
}

// fileFor resolves the partition path for a category.
func (w *Writer) fileFor(cat quote.Category) string {
	name := cat.Filename()
	if override, ok := w.Files[cat]; ok && override != "" {
		name = override
	}
	return filepath.Join(w.Dir, name)
}

// Merge writes the incoming quotes for one category into its partition
// file, preserving every record already there and dropping incoming
// records whose Text is already present.
//
// With no incoming quotes, or none that survive the dedup filter, the
// file is left untouched and the result has Skipped set. A partition file
// that exists but does not parse is an error: silently rewriting it would
// lose data.
func (w *Writer) Merge(cat quote.Category, incoming []quote.Quote) (MergeResult, error) {
	res := MergeResult{Category: cat, Path: w.fileFor(cat)}

	if len(incoming) == 0 {
		res.Skipped = true
		return res, nil
	}

	existing, err := LoadFile(res.Path)
	switch {
	case os.IsNotExist(err):
		res.Created = true
	case err != nil:
		return res, err
	}
	res.Existing = len(existing)

	seen := make(map[string]bool, len(existing))
	for _, q := range existing {
		seen[q.Text] = true
	}

	merged := existing
	for _, q := range incoming {
		if seen[q.Text] {
			continue
		}
		seen[q.Text] = true
		merged = append(merged, q)
		res.Added++
	}

	if res.Added == 0 {
		res.Skipped = true
		res.Created = false
		return res, nil
	}
	res.Total = len(merged)

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return res, fmt.Errorf("create corpus dir: %w", err)
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return res, fmt.Errorf("marshal %s: %w", cat, err)
	}
	if err := os.WriteFile(res.Path, data, 0o644); err != nil {
		return res, fmt.Errorf("write %s: %w", res.Path, err)
	}
	return res, nil
}
