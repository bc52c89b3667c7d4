package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/springkeys/quotectl/internal/corpus"
	"github.com/springkeys/quotectl/internal/quote"
)

// PickOptions holds flags for the pick command.
type PickOptions struct {
	*RootOptions
	Corpus     string
	Category   string
	Difficulty string
	Seed       int64
	SeedSet    bool
}

// NewPickCommand creates the pick command.
func NewPickCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PickOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a random quote from the corpus",
		Long: `Pick a random quote, optionally restricted to one category or one
difficulty. --seed makes the selection reproducible.

Example:
  quotectl pick
  quotectl pick --category Programming --difficulty Hard`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SeedSet = cmd.Flags().Changed("seed")
			return runPick(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Corpus, "corpus", corpus.DefaultDir, "corpus directory")
	cmd.Flags().StringVar(&opts.Category, "category", "", "restrict to a category label")
	cmd.Flags().StringVar(&opts.Difficulty, "difficulty", "", "restrict to a difficulty (Easy|Medium|Hard)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed for reproducible selection")

	return cmd
}

func runPick(opts *PickOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Category != "" && !quote.Category(opts.Category).Known() {
		msg := fmt.Sprintf("unknown category %q", opts.Category)
		_ = formatter.Error(ErrCodeNoMatch, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}
	if opts.Difficulty != "" && !quote.Difficulty(opts.Difficulty).Known() {
		msg := fmt.Sprintf("unknown difficulty %q", opts.Difficulty)
		_ = formatter.Error(ErrCodeNoMatch, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	quotes, err := loadCorpus(opts.Corpus, formatter)
	if err != nil {
		return err
	}

	var lib *corpus.Library
	if opts.SeedSet {
		lib = corpus.NewLibraryWithSeed(quotes, opts.Seed)
	} else {
		lib = corpus.NewLibrary(quotes)
	}

	q, ok := pickFrom(lib, opts)
	if !ok {
		msg := fmt.Sprintf("no quote matches category=%q difficulty=%q", opts.Category, opts.Difficulty)
		_ = formatter.Error(ErrCodeNoMatch, msg, nil)
		return NewExitError(ExitFailure, msg)
	}

	if opts.Format == "json" {
		return formatter.Success(q)
	}
	fmt.Fprintln(formatter.Writer, q.Text)
	fmt.Fprintf(formatter.Writer, "— %s (%s, %s)\n", q.Source, q.Origin, q.Difficulty)
	return nil
}

// pickFrom selects one quote honoring the category/difficulty filters.
func pickFrom(lib *corpus.Library, opts *PickOptions) (quote.Quote, bool) {
	switch {
	case opts.Category != "" && opts.Difficulty != "":
		return lib.RandomWhere(func(q quote.Quote) bool {
			return q.Category == quote.Category(opts.Category) && q.Difficulty == quote.Difficulty(opts.Difficulty)
		})
	case opts.Category != "":
		return lib.RandomByCategory(quote.Category(opts.Category))
	case opts.Difficulty != "":
		return lib.RandomByDifficulty(quote.Difficulty(opts.Difficulty))
	default:
		return lib.Random()
	}
}
