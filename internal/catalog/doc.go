// Package catalog provides a SQLite index over the quote corpus.
//
// The catalog is a convenience for querying (stats dashboards, search);
// the JSON partition files remain the source of truth. Indexing mirrors
// the merge-writer's identity invariant: quotes are keyed on their text
// and inserted with ON CONFLICT(text) DO NOTHING, so re-indexing the same
// corpus is a no-op. Each indexing run is recorded in the runs table with
// a UUID for audit.
//
// Database configuration follows the usual single-writer SQLite setup:
// WAL mode, synchronous=NORMAL, busy_timeout=5000, foreign_keys=ON, and a
// connection pool capped at one writer.
package catalog
