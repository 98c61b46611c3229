package main

import (
	"github.com/jwmay/conbib/internal/citekey"
	"github.com/jwmay/conbib/internal/config"
	"github.com/jwmay/conbib/internal/convert"
	"github.com/spf13/cobra"
)

func init() {
	addCitekeyFlags(citekeyCmd)
	rootCmd.AddCommand(citekeyCmd)
}

// addCitekeyFlags registers the name-resolution flags shared by the
// citekey, debug, index, and export commands.
func addCitekeyFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strip-hyphens", false, "Remove hyphens from resolved last names")
	cmd.Flags().Bool("keep-accents", false, "Keep LaTeX accent escapes in resolved last names")
}

var citekeyCmd = &cobra.Command{
	Use:   "citekey <file>",
	Short: "Generate cite keys for all entries",
	Long: `Generate a citation key for every entry of a BibTeX file.

Keys follow the scheme

  <Last Author's Last Name><2-Digit Year>_<Page Number OR Entry Type>

where the suffix is the first page number for articles and "thesis" for
PhD and masters theses. Each entry header is rewritten with its new key;
all other lines pass through unchanged. The result is written to
<file>.citekey.bib; the input is never modified. Entries with missing
author, year, or page information get a placeholder segment and are
reported at the end of the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runCitekey,
}

// citekeyOptions merges config defaults with command-line flags.
func citekeyOptions(cmd *cobra.Command) citekey.Options {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	opts := citekey.Options{
		StripHyphens: cfg.StripHyphens,
		KeepAccents:  cfg.KeepAccents,
	}
	if cmd.Flags().Changed("strip-hyphens") {
		opts.StripHyphens, _ = cmd.Flags().GetBool("strip-hyphens")
	}
	if cmd.Flags().Changed("keep-accents") {
		opts.KeepAccents, _ = cmd.Flags().GetBool("keep-accents")
	}
	return opts
}

func runCitekey(cmd *cobra.Command, args []string) error {
	input := args[0]
	requireInputFile(input)

	opts := citekeyOptions(cmd)
	output := deriveOutputPath(input, "citekey")

	rewritten, tracker, err := convert.CitekeyFile(input, output, opts)
	if err != nil {
		exitWithError(ExitDataError, "generating citekeys: %v", err)
	}

	if humanOutput {
		outputHuman("  Input file: %s\n  Output file: %s\n", input, output)
		outputHuman("  Updated %d entries\n", rewritten)
		printMissingReport(tracker)
		return nil
	}
	return outputJSON(ConvertResult{
		Input:   input,
		Output:  output,
		Updated: rewritten,
		Missing: tracker.Report(),
	})
}
