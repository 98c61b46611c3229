package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwmay/conbib/internal/missing"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConvertResult is the response for titlecase and citekey runs.
type ConvertResult struct {
	Input   string          `json:"input"`
	Output  string          `json:"output"`
	Updated int             `json:"updated"`
	Missing []missing.Count `json:"missing,omitempty"`
}

// deriveOutputPath inserts the mode name before the input file's final
// extension: refs.bib becomes refs.titlecase.bib. Inputs without an
// extension get the mode appended as one.
func deriveOutputPath(input, mode string) string {
	ext := filepath.Ext(input)
	if ext == "" {
		return input + "." + mode
	}
	return strings.TrimSuffix(input, ext) + "." + mode + ext
}

// replaceExt swaps the input's final extension for newExt (including its
// dot): refs.bib with ".db" becomes refs.db.
func replaceExt(input, newExt string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + newExt
}

// printMissingReport prints the end-of-run table of missing-field labels
// and counts.
func printMissingReport(tracker *missing.Tracker) {
	if !tracker.HasMissing() {
		return
	}
	fmt.Println()
	fmt.Println("  *** WARNING ***")
	fmt.Println("  Some citekeys are incomplete due to missing information")
	fmt.Println("  Check your .bib file for the following missing items:")
	fmt.Println("     ------------------------------")
	fmt.Printf("     %-20s  %8s\n", "Missing Item", "Count")
	fmt.Println("     ------------------------------")
	for _, count := range tracker.Report() {
		fmt.Printf("     %-20s  %8d\n", count.Label, count.Count)
	}
	fmt.Println("     ------------------------------")
}
