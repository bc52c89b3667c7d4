// Package extract scans the legacy Rust source for hardcoded quote
// literals and buckets the matches by category.
//
// The scan is a fixed-shape pattern match, not a parser: a block that does
// not match the five-field literal shape exactly is skipped without
// diagnostics. Both Scan and Partition are pure; all printing is left to
// the caller.
package extract
