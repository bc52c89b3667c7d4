package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/springkeys/quotectl/internal/quote"
)

// LoadFile reads one partition file. The os.IsNotExist sentinel is
// preserved so callers can treat a missing partition as empty.
func LoadFile(path string) ([]quote.Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var quotes []quote.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return quotes, nil
}

// LoadDir reads every *.json partition in dir, in sorted filename order,
// and returns the concatenated quotes. A partition that fails to parse is
// noted on diag and skipped; a missing directory yields an empty corpus.
// Progress lines go to diag as well (pass io.Discard to silence them).
func LoadDir(dir string, diag io.Writer) ([]quote.Quote, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var all []quote.Quote
	for _, name := range names {
		path := filepath.Join(dir, name)
		quotes, err := LoadFile(path)
		if err != nil {
			fmt.Fprintf(diag, "skipping %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(diag, "Loaded %3d quotes from %s\n", len(quotes), path)
		all = append(all, quotes...)
	}
	return all, nil
}
