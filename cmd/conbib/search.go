package main

import (
	"strings"

	"github.com/jwmay/conbib/internal/storage"
	"github.com/spf13/cobra"
)

// DefaultSearchLimit caps search results unless --limit is given.
const DefaultSearchLimit = 50

var (
	searchField string
	searchLimit int
)

func init() {
	searchCmd.Flags().StringVar(&searchField, "field", "", "Restrict the search to one field (title, author)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <db> <query>",
	Short: "Search an index built with the index command",
	Long: `Full-text search over the titles and authors of an index built
with the index command.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSearch,
}

// SearchResult is the response for search runs.
type SearchResult struct {
	Query   string           `json:"query"`
	Results []storage.Record `json:"results"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	dbPath := args[0]
	query := strings.Join(args[1:], " ")
	requireInputFile(dbPath)

	db, err := storage.OpenDB(dbPath)
	if err != nil {
		exitWithError(ExitDataError, "opening database: %v", err)
	}
	defer db.Close()

	var records []storage.Record
	if searchField != "" {
		records, err = db.SearchField(searchField, query, searchLimit)
	} else {
		records, err = db.Search(query, searchLimit)
	}
	if err != nil {
		exitWithError(ExitDataError, "searching: %v", err)
	}

	if humanOutput {
		for i, record := range records {
			outputHuman("%d. %s\n", i+1, record.Citekey)
			outputHuman("   %s\n", record.Title)
			outputHuman("   %s (%s)\n\n", record.Author, record.Year)
		}
		return nil
	}
	return outputJSON(SearchResult{Query: query, Results: records})
}
