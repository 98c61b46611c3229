// Package main provides the conbib CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "conbib",
	Short: "Conversions and cite key generation for BibTeX files",
	Long: `conbib converts BibTeX bibliography files.

It rewrites title fields to bibliographic title case, generates
deterministic citation keys of the form
<Last Author's Last Name><2-Digit Year>_<Page Number OR Entry Type>,
and can index a .bib file into SQLite for fast queries. The input file is
never overwritten; each run writes to a derived output path. Commands
output JSON by default for easy integration with other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Pick up CONBIB_* settings from a local .env if present.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// requireInputFile exits with an error if the input path does not exist.
// Conversion runs must fail before any output file is created.
func requireInputFile(path string) {
	if _, err := os.Stat(path); err != nil {
		exitWithError(ExitError, "input file does not exist: %s", path)
	}
}
