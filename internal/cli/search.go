package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/springkeys/quotectl/internal/catalog"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Database string
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search the catalog for quotes containing a term",
		Long: `Search indexed quote text for a substring. Matching is
case-insensitive across scripts (Unicode case folding over normalized
text), since the corpus is multilingual.

Example:
  quotectl search --db quotes/catalog.db typewriter`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite catalog (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runSearch(opts *SearchOptions, term string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cat, err := catalog.Open(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer func() {
		if closeErr := cat.Close(); closeErr != nil {
			slog.Error("error closing catalog", "error", closeErr)
		}
	}()

	matches, err := cat.Search(cmd.Context(), term)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitCommandError, "search failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(matches)
	}

	if len(matches) == 0 {
		fmt.Fprintf(formatter.Writer, "No quotes match %q\n", term)
		return nil
	}
	for _, q := range matches {
		fmt.Fprintf(formatter.Writer, "[%s] %s — %s\n", q.Category, q.Text, q.Source)
	}
	fmt.Fprintf(formatter.Writer, "%d match(es)\n", len(matches))
	return nil
}
