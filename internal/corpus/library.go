package corpus

import (
	"math/rand"
	"time"

	"github.com/springkeys/quotectl/internal/quote"
)

// Library is an in-memory view of a loaded corpus, indexed by category and
// difficulty for selection. It is not safe for concurrent use.
type Library struct {
	quotes       []quote.Quote
	byCategory   map[quote.Category][]int
	byDifficulty map[quote.Difficulty][]int
	cursor       int
	rng          *rand.Rand
}

// NewLibrary builds a library seeded from the wall clock.
func NewLibrary(quotes []quote.Quote) *Library {
	return NewLibraryWithSeed(quotes, time.Now().UnixNano())
}

// NewLibraryWithSeed builds a library with a fixed seed, for reproducible
// selection. The sequential cursor starts at a random offset so repeated
// sessions do not always begin with the same quote.
func NewLibraryWithSeed(quotes []quote.Quote, seed int64) *Library {
	l := &Library{
		quotes:       quotes,
		byCategory:   make(map[quote.Category][]int),
		byDifficulty: make(map[quote.Difficulty][]int),
		rng:          rand.New(rand.NewSource(seed)),
	}
	for i, q := range quotes {
		l.byCategory[q.Category] = append(l.byCategory[q.Category], i)
		l.byDifficulty[q.Difficulty] = append(l.byDifficulty[q.Difficulty], i)
	}
	if len(quotes) > 0 {
		l.cursor = l.rng.Intn(len(quotes))
	}
	return l
}

// Len returns the number of quotes in the library.
func (l *Library) Len() int { return len(l.quotes) }

// All returns the backing slice in load order.
func (l *Library) All() []quote.Quote { return l.quotes }

// Random returns a uniformly random quote. ok is false on an empty
// library.
func (l *Library) Random() (q quote.Quote, ok bool) {
	if len(l.quotes) == 0 {
		return quote.Quote{}, false
	}
	return l.quotes[l.rng.Intn(len(l.quotes))], true
}

// RandomByCategory returns a random quote with the given category label.
func (l *Library) RandomByCategory(c quote.Category) (quote.Quote, bool) {
	return l.randomFrom(l.byCategory[c])
}

// RandomByDifficulty returns a random quote with the given difficulty.
func (l *Library) RandomByDifficulty(d quote.Difficulty) (quote.Quote, bool) {
	return l.randomFrom(l.byDifficulty[d])
}

func (l *Library) randomFrom(indices []int) (quote.Quote, bool) {
	if len(indices) == 0 {
		return quote.Quote{}, false
	}
	return l.quotes[indices[l.rng.Intn(len(indices))]], true
}

// RandomWhere returns a random quote satisfying pred.
func (l *Library) RandomWhere(pred func(quote.Quote) bool) (quote.Quote, bool) {
	var pool []int
	for i, q := range l.quotes {
		if pred(q) {
			pool = append(pool, i)
		}
	}
	return l.randomFrom(pool)
}

// NextSequential advances the cursor and returns the quote there,
// wrapping at the end of the corpus.
func (l *Library) NextSequential() (quote.Quote, bool) {
	if len(l.quotes) == 0 {
		return quote.Quote{}, false
	}
	l.cursor = (l.cursor + 1) % len(l.quotes)
	return l.quotes[l.cursor], true
}

// Stats summarizes a library by category and difficulty.
type Stats struct {
	Total        int                      `json:"total"`
	ByCategory   map[quote.Category]int   `json:"by_category"`
	ByDifficulty map[quote.Difficulty]int `json:"by_difficulty"`
}

// Stats counts the library's quotes per category and per difficulty.
// Unknown labels are counted under their literal value.
func (l *Library) Stats() Stats {
	s := Stats{
		Total:        len(l.quotes),
		ByCategory:   make(map[quote.Category]int),
		ByDifficulty: make(map[quote.Difficulty]int),
	}
	for c, indices := range l.byCategory {
		s.ByCategory[c] = len(indices)
	}
	for d, indices := range l.byDifficulty {
		s.ByDifficulty[d] = len(indices)
	}
	return s
}
