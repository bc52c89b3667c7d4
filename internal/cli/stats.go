package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/springkeys/quotectl/internal/corpus"
	"github.com/springkeys/quotectl/internal/quote"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	Corpus string
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "stats",
		Short:         "Show per-category and per-difficulty corpus counts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Corpus, "corpus", corpus.DefaultDir, "corpus directory")

	return cmd
}

func runStats(opts *StatsOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	quotes, err := loadCorpus(opts.Corpus, formatter)
	if err != nil {
		return err
	}

	stats := corpus.NewLibrary(quotes).Stats()
	if opts.Format == "json" {
		return formatter.Success(stats)
	}

	fmt.Fprintf(formatter.Writer, "Total: %d\n", stats.Total)
	fmt.Fprintln(formatter.Writer, "By category:")
	for _, c := range statCategories(stats) {
		fmt.Fprintf(formatter.Writer, "  %-16s %4d\n", c, stats.ByCategory[c])
	}
	fmt.Fprintln(formatter.Writer, "By difficulty:")
	for _, d := range []quote.Difficulty{quote.Easy, quote.Medium, quote.Hard} {
		fmt.Fprintf(formatter.Writer, "  %-16s %4d\n", d, stats.ByDifficulty[d])
	}
	return nil
}

// statCategories returns the known categories in declaration order,
// followed by any stray labels in the corpus, sorted.
func statCategories(stats corpus.Stats) []quote.Category {
	var cats []quote.Category
	for _, c := range quote.Categories() {
		if stats.ByCategory[c] > 0 {
			cats = append(cats, c)
		}
	}
	var stray []quote.Category
	for c := range stats.ByCategory {
		if !c.Known() {
			stray = append(stray, c)
		}
	}
	sort.Slice(stray, func(i, j int) bool { return stray[i] < stray[j] })
	return append(cats, stray...)
}

// loadCorpus loads the corpus directory, failing with an exit error when
// it is empty or unreadable.
func loadCorpus(dir string, formatter *OutputFormatter) ([]quote.Quote, error) {
	diag := io.Writer(io.Discard)
	if formatter.Verbose {
		diag = formatter.GetErrWriter()
	}

	quotes, err := corpus.LoadDir(dir, diag)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "failed to load corpus", err)
	}
	if len(quotes) == 0 {
		msg := fmt.Sprintf("no quotes found in %s", dir)
		_ = formatter.Error(ErrCodeEmptyCorpus, msg, nil)
		return nil, NewExitError(ExitFailure, msg)
	}
	return quotes, nil
}
