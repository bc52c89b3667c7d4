package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/springkeys/quotectl/internal/corpus"
	"github.com/springkeys/quotectl/internal/extract"
	"github.com/springkeys/quotectl/internal/quote"
)

// DefaultSource is the legacy Rust file the quote literals live in,
// relative to the repository root.
const DefaultSource = "src/quotes.rs"

// ExtractOptions holds flags for the extract command.
type ExtractOptions struct {
	*RootOptions
	Source     string
	Out        string
	ConfigPath string
}

// ExtractSummary is the success payload for the extract command.
type ExtractSummary struct {
	Source  string               `json:"source"`
	Out     string               `json:"out"`
	Found   int                  `json:"found"`
	Unknown int                  `json:"unknown"`
	Results []corpus.MergeResult `json:"results"`
}

// NewExtractCommand creates the extract command.
func NewExtractCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExtractOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract quote literals into the JSON corpus",
		Long: `Scan the legacy Rust source for hardcoded quote literals and merge
them into one JSON file per category.

Merging is idempotent: a quote whose text is already present in its
partition file is dropped, so re-running extract never duplicates
records. Partition files for categories with nothing new are left
untouched.

Example:
  quotectl extract
  quotectl extract --source src/quotes.rs --out quotes/categories`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "Rust source file to scan (default "+DefaultSource+")")
	cmd.Flags().StringVar(&opts.Out, "out", "", "corpus output directory (default "+corpus.DefaultDir+")")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML config file (default "+DefaultConfigPath+" if present)")

	return cmd
}

func runExtract(opts *ExtractOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := resolveConfig(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	source := firstNonEmpty(opts.Source, cfg.Source, DefaultSource)
	out := firstNonEmpty(opts.Out, cfg.Out, corpus.DefaultDir)
	slog.Debug("extract starting", "source", source, "out", out)

	src, err := os.ReadFile(source)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read source file", err)
	}

	formatter.Say("Parsing quotes from %s...", source)
	quotes := extract.Scan(src)
	formatter.Say("Found %d quotes", len(quotes))

	parts := extract.Partition(quotes)
	for _, q := range parts.Unknown {
		formatter.Say("Unknown category: %s", q.Category)
	}

	writer := &corpus.Writer{Dir: out, Files: cfg.FileOverrides()}
	summary := ExtractSummary{
		Source:  source,
		Out:     out,
		Found:   len(quotes),
		Unknown: len(parts.Unknown),
	}

	for _, cat := range quote.Categories() {
		bucket := parts.Buckets[cat]
		if len(bucket) == 0 {
			formatter.Say("No quotes found for category %s, skipping", cat)
			continue
		}

		res, err := writer.Merge(cat, bucket)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to merge category "+string(cat), err)
		}
		summary.Results = append(summary.Results, res)

		switch {
		case res.Skipped:
			formatter.Say("No new quotes to add for %s", cat)
		case res.Created:
			formatter.Say("Creating new file with %d quotes for %s", res.Added, cat)
			formatter.Say("Saved %d quotes to %s", res.Total, res.Path)
		default:
			formatter.Say("Adding %d new quotes to %d existing quotes for %s", res.Added, res.Existing, cat)
			formatter.Say("Saved %d quotes to %s", res.Total, res.Path)
		}
	}

	if opts.Format == "json" {
		return formatter.Success(summary)
	}
	formatter.Say("Quote extraction complete!")
	return nil
}

// firstNonEmpty returns the first non-empty string, for flag > config >
// default resolution.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
