package main

import (
	"os"

	"github.com/jwmay/conbib/internal/bibtex"
	"github.com/jwmay/conbib/internal/missing"
	"github.com/jwmay/conbib/internal/storage"
	"github.com/spf13/cobra"
)

var indexDBPath string

func init() {
	indexCmd.Flags().StringVar(&indexDBPath, "db", "", "Database path (default <file>.db)")
	addCitekeyFlags(indexCmd)
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index <file>",
	Short: "Build a SQLite index of a BibTeX file",
	Long: `Parse a BibTeX file and build a SQLite index of its entries.

Each entry is stored with its derived citekey, and titles and authors go
into a full-text search table for use with the search command. The index
is rebuilt from scratch on every run.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

// IndexResult is the response for index runs.
type IndexResult struct {
	Input   string          `json:"input"`
	DB      string          `json:"db"`
	Indexed int             `json:"indexed"`
	ByType  map[string]int  `json:"by_type"`
	Missing []missing.Count `json:"missing,omitempty"`
}

func runIndex(cmd *cobra.Command, args []string) error {
	input := args[0]
	requireInputFile(input)

	opts := citekeyOptions(cmd)

	dbPath := indexDBPath
	if dbPath == "" {
		dbPath = replaceExt(input, ".db")
	}

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

	db, err := storage.OpenDB(dbPath)
	if err != nil {
		exitWithError(ExitDataError, "opening database: %v", err)
	}
	defer db.Close()

	indexed, err := db.Rebuild(records)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding index: %v", err)
	}

	byType, err := db.CountByType()
	if err != nil {
		exitWithError(ExitDataError, "counting entries: %v", err)
	}

	if humanOutput {
		outputHuman("  Input file: %s\n  Database: %s\n", input, dbPath)
		outputHuman("  Indexed %d entries\n", indexed)
		for entryType, n := range byType {
			outputHuman("    %-15s %d\n", entryType, n)
		}
		printMissingReport(tracker)
		return nil
	}
	return outputJSON(IndexResult{
		Input:   input,
		DB:      dbPath,
		Indexed: indexed,
		ByType:  byType,
		Missing: tracker.Report(),
	})
}
