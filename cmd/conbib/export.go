package main

import (
	"os"

	"github.com/jwmay/conbib/internal/bibtex"
	"github.com/jwmay/conbib/internal/missing"
	"github.com/jwmay/conbib/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	addCitekeyFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export parsed entries as JSONL",
	Long: `Parse a BibTeX file and write its entries as JSON Lines, one
entry per line with its derived citekey, to <file>.jsonl.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

// ExportResult is the response for export runs.
type ExportResult struct {
	Input    string          `json:"input"`
	Output   string          `json:"output"`
	Exported int             `json:"exported"`
	Missing  []missing.Count `json:"missing,omitempty"`
}

func runExport(cmd *cobra.Command, args []string) error {
	input := args[0]
	requireInputFile(input)

	opts := citekeyOptions(cmd)
	output := replaceExt(input, ".jsonl")

	f, err := os.Open(input)
	if err != nil {
		exitWithError(ExitError, "opening input: %v", err)
	}
	entries, err := bibtex.Parse(f)
	f.Close()
	if err != nil {
		exitWithError(ExitDataError, "parsing entries: %v", err)
	}

	tracker := missing.New()
	records := storage.NewRecords(entries, tracker, opts)

	if err := storage.WriteAll(output, records); err != nil {
		exitWithError(ExitDataError, "writing entries: %v", err)
	}

	if humanOutput {
		outputHuman("  Input file: %s\n  Output file: %s\n", input, output)
		outputHuman("  Exported %d entries\n", len(records))
		printMissingReport(tracker)
		return nil
	}
	return outputJSON(ExportResult{
		Input:    input,
		Output:   output,
		Exported: len(records),
		Missing:  tracker.Report(),
	})
}
