package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jwmay/conbib/internal/bibtex"
	"github.com/jwmay/conbib/internal/citekey"
	"github.com/jwmay/conbib/internal/missing"
)

const testBib = `@article{May2013,
  author = {Joseph W. May and X. Li},
  title = {quantum transport in nanowires},
  journal = {J. Chem. Phys.},
  year = {2013},
  pages = {45-52},
}

@book{Szabo1996,
  author = {Attila Szabo and Neil S. Ostlund},
  title = {modern quantum chemistry},
  year = {1996},
}
`

func testRecords(t *testing.T) []Record {
	t.Helper()
	entries, err := bibtex.Parse(strings.NewReader(testBib))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return NewRecords(entries, missing.New(), citekey.Options{})
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRebuildAndGet(t *testing.T) {
	db := openTestDB(t)

	n, err := db.Rebuild(testRecords(t))
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Rebuild() = %d, want 2", n)
	}

	record, err := db.GetByCitekey("Li13_45")
	if err != nil {
		t.Fatalf("GetByCitekey() error = %v", err)
	}
	if record == nil {
		t.Fatal("GetByCitekey() = nil, want record")
	}
	if record.Type != "article" {
		t.Errorf("record.Type = %q, want article", record.Type)
	}
	if record.BibKey != "May2013" {
		t.Errorf("record.BibKey = %q, want May2013", record.BibKey)
	}
	if record.Fields["journal"] != "J. Chem. Phys." {
		t.Errorf("record.Fields[journal] = %q", record.Fields["journal"])
	}

	absent, err := db.GetByCitekey("Nobody00_misc")
	if err != nil {
		t.Fatalf("GetByCitekey() error = %v", err)
	}
	if absent != nil {
		t.Errorf("GetByCitekey() = %+v, want nil for unknown key", absent)
	}
}

func TestRebuild_Idempotent(t *testing.T) {
	db := openTestDB(t)
	records := testRecords(t)

	if _, err := db.Rebuild(records); err != nil {
		t.Fatalf("first Rebuild() error = %v", err)
	}
	if _, err := db.Rebuild(records); err != nil {
		t.Fatalf("second Rebuild() error = %v", err)
	}

	counts, err := db.CountByType()
	if err != nil {
		t.Fatalf("CountByType() error = %v", err)
	}
	if counts["article"] != 1 || counts["book"] != 1 {
		t.Errorf("CountByType() = %v, want one article and one book", counts)
	}
}

func TestSearch(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Rebuild(testRecords(t)); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	results, err := db.Search("quantum", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Search(quantum) returned %d results, want 2", len(results))
	}

	results, err = db.SearchField("author", "Szabo", 10)
	if err != nil {
		t.Fatalf("SearchField() error = %v", err)
	}
	if len(results) != 1 || results[0].Citekey != "Ostlund96_book" {
		t.Errorf("SearchField(author, Szabo) = %+v, want Ostlund96_book", results)
	}

	if _, err := db.SearchField("journal", "chem", 10); err == nil {
		t.Error("SearchField(journal) error = nil, want unknown field error")
	}
}
