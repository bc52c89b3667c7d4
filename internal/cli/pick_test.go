package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/springkeys/quotectl/internal/quote"
)

func runPickCmd(t *testing.T, format string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewPickCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestPickByCategory(t *testing.T) {
	dir := seedCorpus(t)

	buf, err := runPickCmd(t, "json", "--corpus", dir, "--category", "Programming")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var q quote.Quote
	require.NoError(t, json.Unmarshal(data, &q))
	assert.Equal(t, quote.Programming, q.Category)
}

func TestPickSeedReproducible(t *testing.T) {
	dir := seedCorpus(t)

	first, err := runPickCmd(t, "text", "--corpus", dir, "--seed", "42")
	require.NoError(t, err)
	second, err := runPickCmd(t, "text", "--corpus", dir, "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestPickCombinedFilters(t *testing.T) {
	dir := seedCorpus(t)

	buf, err := runPickCmd(t, "json", "--corpus", dir, "--category", "Proverbs", "--difficulty", "Hard")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var q quote.Quote
	require.NoError(t, json.Unmarshal(data, &q))
	assert.Equal(t, "p2", q.Text)
}

func TestPickNoMatch(t *testing.T) {
	dir := seedCorpus(t)

	_, err := runPickCmd(t, "text", "--corpus", dir, "--category", "Humor")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestPickUnknownCategoryRejected(t *testing.T) {
	dir := seedCorpus(t)

	_, err := runPickCmd(t, "text", "--corpus", dir, "--category", "Lessons")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestPickUnknownDifficultyRejected(t *testing.T) {
	dir := seedCorpus(t)

	_, err := runPickCmd(t, "text", "--corpus", dir, "--difficulty", "Brutal")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
