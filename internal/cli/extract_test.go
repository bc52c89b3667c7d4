package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/springkeys/quotectl/internal/corpus"
	"github.com/springkeys/quotectl/internal/quote"
)

const testSource = `
fn default_quotes() -> Vec<Quote> {
    vec![
        Quote {
            text: "Talk is cheap. Show me the code.".to_string(),
            source: "Linus Torvalds".to_string(),
            difficulty: QuoteDifficulty::Easy,
            category: QuoteCategory::Programming,
            origin: "Finnish/American".to_string(),
        },
        Quote {
            text: "To be, or not to be, that is the question.".to_string(),
            source: "William Shakespeare, Hamlet".to_string(),
            difficulty: QuoteDifficulty::Medium,
            category: QuoteCategory::Literature,
            origin: "English".to_string(),
        },
        Quote {
            text: "asdf jkl; asdf jkl;".to_string(),
            source: "drill".to_string(),
            difficulty: QuoteDifficulty::Easy,
            category: QuoteCategory::LessonsHomeRow,
            origin: "English".to_string(),
        },
    ]
}
`

// writeSource drops the test Rust source into a temp dir and returns its
// path plus a fresh corpus dir.
func writeSource(t *testing.T, content string) (source, out string) {
	t.Helper()
	dir := t.TempDir()
	source = filepath.Join(dir, "quotes.rs")
	require.NoError(t, os.WriteFile(source, []byte(content), 0o644))
	return source, filepath.Join(dir, "categories")
}

func runExtractCmd(t *testing.T, format string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewExtractCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestExtractCreatesPartitions(t *testing.T) {
	source, out := writeSource(t, testSource)

	buf, err := runExtractCmd(t, "text", "--source", source, "--out", out)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Found 3 quotes")
	assert.Contains(t, output, "Creating new file with 1 quotes for Programming")
	assert.Contains(t, output, "Quote extraction complete!")

	prog, err := corpus.LoadFile(filepath.Join(out, "programming.json"))
	require.NoError(t, err)
	require.Len(t, prog, 1)
	assert.Equal(t, "Talk is cheap. Show me the code.", prog[0].Text)

	lit, err := corpus.LoadFile(filepath.Join(out, "literature.json"))
	require.NoError(t, err)
	require.Len(t, lit, 1)
}

func TestExtractSkipsEmptyCategories(t *testing.T) {
	source, out := writeSource(t, testSource)

	buf, err := runExtractCmd(t, "text", "--source", source, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No quotes found for category Humor, skipping")

	// No empty-array file for categories with no matches.
	_, err = os.Stat(filepath.Join(out, "humor.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestExtractUnknownCategoryDropped(t *testing.T) {
	source, out := writeSource(t, testSource)

	buf, err := runExtractCmd(t, "text", "--source", source, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Unknown category: LessonsHomeRow")

	// The lesson quote must not land in any partition.
	for _, c := range quote.Categories() {
		quotes, err := corpus.LoadFile(filepath.Join(out, c.Filename()))
		if os.IsNotExist(err) {
			continue
		}
		require.NoError(t, err)
		for _, q := range quotes {
			assert.NotEqual(t, "asdf jkl; asdf jkl;", q.Text)
		}
	}
}

func TestExtractSecondRunIsNoOp(t *testing.T) {
	source, out := writeSource(t, testSource)

	_, err := runExtractCmd(t, "text", "--source", source, "--out", out)
	require.NoError(t, err)

	progPath := filepath.Join(out, "programming.json")
	before, err := os.ReadFile(progPath)
	require.NoError(t, err)

	buf, err := runExtractCmd(t, "text", "--source", source, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No new quotes to add for Programming")
	assert.Contains(t, buf.String(), "No new quotes to add for Literature")

	after, err := os.ReadFile(progPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestExtractMergesIntoExistingPartition(t *testing.T) {
	source, out := writeSource(t, testSource)

	// Seed the programming partition with a quote the source does not have.
	w := &corpus.Writer{Dir: out}
	seeded := quote.Quote{
		Text:       "First, solve the problem. Then, write the code.",
		Source:     "John Johnson",
		Difficulty: quote.Easy,
		Category:   quote.Programming,
		Origin:     "English",
	}
	_, err := w.Merge(quote.Programming, []quote.Quote{seeded})
	require.NoError(t, err)

	buf, err := runExtractCmd(t, "text", "--source", source, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Adding 1 new quotes to 1 existing quotes for Programming")

	prog, err := corpus.LoadFile(filepath.Join(out, "programming.json"))
	require.NoError(t, err)
	require.Len(t, prog, 2)
	assert.Equal(t, seeded, prog[0], "pre-existing record must stay first and unchanged")
	assert.Equal(t, "Talk is cheap. Show me the code.", prog[1].Text)
}

func TestExtractMissingSource(t *testing.T) {
	_, err := runExtractCmd(t, "text", "--source", filepath.Join(t.TempDir(), "absent.rs"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExtractCorruptPartitionFails(t *testing.T) {
	source, out := writeSource(t, testSource)
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "programming.json"), []byte("{oops"), 0o644))

	_, err := runExtractCmd(t, "text", "--source", source, "--out", out)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExtractJSONOutput(t *testing.T) {
	source, out := writeSource(t, testSource)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewExtractCommand(rootOpts)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--source", source, "--out", out})
	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp), "stdout must be pure JSON")
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)

	// Progress lines go to stderr in JSON mode.
	assert.Contains(t, stderr.String(), "Found 3 quotes")
}

func TestExtractConfigResolution(t *testing.T) {
	source, _ := writeSource(t, testSource)
	dir := t.TempDir()
	out := filepath.Join(dir, "configured")

	cfgPath := filepath.Join(dir, "quotectl.yaml")
	cfg := "source: " + source + "\nout: " + out + "\ncategories:\n  Programming: prog.json\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	_, err := runExtractCmd(t, "text", "--config", cfgPath)
	require.NoError(t, err)

	// Override filename honored for Programming, default for the rest.
	_, err = os.Stat(filepath.Join(out, "prog.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "literature.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "programming.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestExtractExplicitConfigMustExist(t *testing.T) {
	_, err := runExtractCmd(t, "text", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
