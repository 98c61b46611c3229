package main

import (
	"github.com/jwmay/conbib/internal/config"
	"github.com/jwmay/conbib/internal/convert"
	"github.com/jwmay/conbib/internal/titlecase"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(titlecaseCmd)
}

var titlecaseCmd = &cobra.Command{
	Use:   "titlecase <file>",
	Short: "Convert all title fields to title case",
	Long: `Convert all title fields of a BibTeX file to title case.

The input file is parsed line by line; every title field's contents are
rewritten to bibliographic title case and every other line is passed
through unchanged. The result is written to <file>.titlecase.bib; the
input is never modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runTitlecase,
}

func runTitlecase(cmd *cobra.Command, args []string) error {
	input := args[0]
	requireInputFile(input)

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	output := deriveOutputPath(input, "titlecase")
	caser := titlecase.New(cfg.ExtraSmallWords...)

	updated, err := convert.TitlecaseFile(input, output, caser)
	if err != nil {
		exitWithError(ExitDataError, "converting titles: %v", err)
	}

	if humanOutput {
		outputHuman("  Input file: %s\n  Output file: %s\n", input, output)
		outputHuman("  Updated %d title fields\n", updated)
		return nil
	}
	return outputJSON(ConvertResult{Input: input, Output: output, Updated: updated})
}
