package extract

import (
	"github.com/springkeys/quotectl/internal/quote"
)

// PartitionResult holds extracted quotes routed to their category buckets.
// Unknown collects quotes whose category label is not one of the known
// seven; they are excluded from every bucket and the caller decides how to
// report them.
type PartitionResult struct {
	Buckets map[quote.Category][]quote.Quote
	Unknown []quote.Quote
}

// Partition routes quotes into per-category buckets by exact label match.
// Every known category has an entry in Buckets, possibly empty, so callers
// can range over quote.Categories() without nil checks.
func Partition(quotes []quote.Quote) PartitionResult {
	res := PartitionResult{
		Buckets: make(map[quote.Category][]quote.Quote, len(quote.Categories())),
	}
	for _, c := range quote.Categories() {
		res.Buckets[c] = nil
	}
	for _, q := range quotes {
		if !q.Category.Known() {
			res.Unknown = append(res.Unknown, q)
			continue
		}
		res.Buckets[q.Category] = append(res.Buckets[q.Category], q)
	}
	return res
}
