package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/springkeys/quotectl/internal/catalog"
	"github.com/springkeys/quotectl/internal/corpus"
)

// IndexOptions holds flags for the index command.
type IndexOptions struct {
	*RootOptions
	Database string
	Corpus   string
}

// IndexSummary is the success payload for the index command.
type IndexSummary struct {
	RunID    string `json:"run_id"`
	Database string `json:"database"`
	Corpus   string `json:"corpus"`
	Scanned  int    `json:"scanned"`
	Inserted int    `json:"inserted"`
	Total    int    `json:"total"`
}

// NewIndexCommand creates the index command.
func NewIndexCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IndexOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build or refresh the SQLite catalog of the corpus",
		Long: `Index every corpus quote into a SQLite catalog for search and
querying. Indexing is idempotent: quotes already cataloged are skipped,
so re-indexing an unchanged corpus inserts nothing. Each run is recorded
with a run ID.

Example:
  quotectl index --db quotes/catalog.db
  quotectl index --db /tmp/catalog.db --corpus quotes/categories`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite catalog (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Corpus, "corpus", corpus.DefaultDir, "corpus directory")

	return cmd
}

func runIndex(opts *IndexOptions, cmd *cobra.Command) error {
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

	ctx := cmd.Context()
	inserted, err := cat.IndexAll(ctx, quotes)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to index corpus", err)
	}

	runID, err := cat.RecordRun(ctx, opts.Corpus, len(quotes), inserted)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to record run", err)
	}
	slog.Debug("indexing run recorded", "run_id", runID)

	total, err := cat.Count(ctx)
	if err != nil {
		_ = formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to count catalog", err)
	}

	summary := IndexSummary{
		RunID:    runID,
		Database: opts.Database,
		Corpus:   opts.Corpus,
		Scanned:  len(quotes),
		Inserted: inserted,
		Total:    total,
	}
	if opts.Format == "json" {
		return formatter.Success(summary)
	}

	fmt.Fprintf(formatter.Writer, "Indexed %d quotes (%d new) into %s\n", summary.Scanned, summary.Inserted, summary.Database)
	fmt.Fprintf(formatter.Writer, "Catalog now holds %d quotes\n", summary.Total)
	return nil
}
