// Package corpus reads and writes the on-disk quote corpus: one
// pretty-printed JSON array per category under the corpus directory.
//
// The write side is append-only with identity-key dedup: merging the same
// extraction twice never grows a partition file (Text is the identity
// key). The read side mirrors the SpringKeys trainer's loader: partitions
// are read in sorted filename order and a file that fails to parse is
// reported and skipped, while the writer fails fast on a corrupt partition
// rather than risk clobbering it.
package corpus
