package catalog

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/springkeys/quotectl/internal/quote"
)

// Fold returns the search key for a string: NFC normalization followed by
// Unicode case folding. The corpus is multilingual, so plain lowercasing
// is not enough ("Grüße" must match "grüsse" the way SQLite's ASCII-only
// LOWER never would). A fresh Caser per call - they are stateful and not
// safe to share.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Search returns all quotes whose folded text contains the folded term,
// ordered by category then text for stable output.
func (c *Catalog) Search(ctx context.Context, term string) ([]quote.Quote, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT text, source, difficulty, category, origin
		FROM quotes
		WHERE instr(fold, ?) > 0
		ORDER BY category ASC, text ASC
	`, Fold(term))
	if err != nil {
		return nil, fmt.Errorf("search quotes: %w", err)
	}
	defer rows.Close()

	var quotes []quote.Quote
	for rows.Next() {
		var q quote.Quote
		if err := rows.Scan(&q.Text, &q.Source, &q.Difficulty, &q.Category, &q.Origin); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}

	// Return empty slice instead of nil
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	return quotes, nil
}

// Count returns the number of indexed quotes.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	var count int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM quotes").Scan(&count); err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return count, nil
}
