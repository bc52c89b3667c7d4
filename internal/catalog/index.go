package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/springkeys/quotectl/internal/quote"
)

// InsertQuote inserts one quote into the catalog.
// Uses ON CONFLICT(text) DO NOTHING for idempotency - a quote whose text
// is already indexed is silently ignored and inserted is false.
func (c *Catalog) InsertQuote(ctx context.Context, q quote.Quote) (inserted bool, err error) {
	result, err := c.db.ExecContext(ctx, `
		INSERT INTO quotes (text, source, difficulty, category, origin, fold)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(text) DO NOTHING
	`,
		q.Text,
		q.Source,
		string(q.Difficulty),
		string(q.Category),
		q.Origin,
		Fold(q.Text),
	)
	if err != nil {
		return false, fmt.Errorf("insert quote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert quote: rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// IndexAll inserts every quote, returning how many were new. Quotes
// already present are counted as skipped, not errors, so re-indexing an
// unchanged corpus reports zero inserted.
func (c *Catalog) IndexAll(ctx context.Context, quotes []quote.Quote) (inserted int, err error) {
	for _, q := range quotes {
		ok, err := c.InsertQuote(ctx, q)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

// RecordRun writes an audit row for one indexing run and returns its
// generated run ID.
func (c *Catalog) RecordRun(ctx context.Context, corpus string, scanned, inserted int) (string, error) {
	id := uuid.NewString()
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO runs (id, corpus, scanned, inserted, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		id,
		corpus,
		scanned,
		inserted,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return id, nil
}
