package quote

// Difficulty is the difficulty label carried by a quote.
type Difficulty string

// Difficulty levels, as serialized in corpus files.
const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Known reports whether d is one of the recognized difficulty labels.
func (d Difficulty) Known() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Category is the partition label carried by a quote. Each known category
// maps to exactly one corpus file.
type Category string

// Known categories, as serialized in corpus files.
const (
	Proverbs       Category = "Proverbs"
	TongueTwisters Category = "TongueTwisters"
	Literature     Category = "Literature"
	Programming    Category = "Programming"
	Humor          Category = "Humor"
	Multilingual   Category = "Multilingual"
	Typewriters    Category = "Typewriters"
)

// partitionFiles is the static category-to-filename table. One entry per
// known category; the filename is relative to the corpus directory.
var partitionFiles = map[Category]string{
	Proverbs:       "proverbs.json",
	TongueTwisters: "tongue_twisters.json",
	Literature:     "literature.json",
	Programming:    "programming.json",
	Humor:          "humor.json",
	Multilingual:   "multilingual.json",
	Typewriters:    "typewriters.json",
}

// Known reports whether c is one of the recognized category labels.
func (c Category) Known() bool {
	_, ok := partitionFiles[c]
	return ok
}

// Filename returns the corpus filename for a known category, or "" for an
// unknown one.
func (c Category) Filename() string {
	return partitionFiles[c]
}

// Categories returns the known categories in stable declaration order.
func Categories() []Category {
	return []Category{
		Proverbs,
		TongueTwisters,
		Literature,
		Programming,
		Humor,
		Multilingual,
		Typewriters,
	}
}

// Quote is one typing-practice record. Text is the identity key: within a
// partition file, Text values are unique across the accumulated history of
// extraction runs.
type Quote struct {
	Text       string     `json:"text"`
	Source     string     `json:"source"`
	Difficulty Difficulty `json:"difficulty"`
	Category   Category   `json:"category"`
	Origin     string     `json:"origin"`
}
