package main

import (
	"os"

	"github.com/jwmay/conbib/internal/convert"
	"github.com/spf13/cobra"
)

func init() {
	addCitekeyFlags(debugCmd)
	rootCmd.AddCommand(debugCmd)
}

var debugCmd = &cobra.Command{
	Use:   "debug <file>",
	Short: "Print every parsed field of every entry",
	Long: `Print every parsed field of every entry to standard output,
along with the derived citekey components (last author's last name,
2-digit year, first page, citekey). Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func runDebug(cmd *cobra.Command, args []string) error {
	input := args[0]
	requireInputFile(input)

	opts := citekeyOptions(cmd)

	f, err := os.Open(input)
	if err != nil {
		exitWithError(ExitError, "opening input: %v", err)
	}
	defer f.Close()

	if err := convert.Debug(f, os.Stdout, opts); err != nil {
		exitWithError(ExitDataError, "dumping entries: %v", err)
	}
	return nil
}
