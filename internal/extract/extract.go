package extract

import (
	"regexp"

	"github.com/springkeys/quotectl/internal/quote"
)

// quotePattern matches one five-field Quote literal in the legacy Rust
// source. Capture groups: text, source, difficulty, category, origin.
// The [^"]* fields deliberately stop at the first double quote, so an
// escaped quote inside a field truncates the match and the block is
// skipped. Field order is fixed.
var quotePattern = regexp.MustCompile(
	`Quote\s*\{\s*` +
		`text:\s*"([^"]*)"\.to_string\(\),\s*` +
		`source:\s*"([^"]*)"\.to_string\(\),\s*` +
		`difficulty:\s*QuoteDifficulty::(\w+),\s*` +
		`category:\s*QuoteCategory::(\w+),\s*` +
		`origin:\s*"([^"]*)"\.to_string\(\),\s*` +
		`\}`)

// Scan extracts every quote literal from src, in source order.
// Malformed or partial blocks simply do not match and are dropped.
func Scan(src []byte) []quote.Quote {
	var quotes []quote.Quote
	for _, m := range quotePattern.FindAllSubmatch(src, -1) {
		quotes = append(quotes, quote.Quote{
			Text:       string(m[1]),
			Source:     string(m[2]),
			Difficulty: quote.Difficulty(string(m[3])),
			Category:   quote.Category(string(m[4])),
			Origin:     string(m[5]),
		})
	}
	return quotes
}
