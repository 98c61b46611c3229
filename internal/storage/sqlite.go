package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectRecordFields contains the standard field list for SELECT queries.
const selectRecordFields = `citekey, bib_key, entry_type, author, title,
	journal, volume, year, pages, fields_json, header_line`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Main entries table
		CREATE TABLE IF NOT EXISTS entries (
			citekey TEXT NOT NULL,
			bib_key TEXT,
			entry_type TEXT NOT NULL,
			author TEXT,
			title TEXT,
			journal TEXT,
			volume TEXT,
			year TEXT,
			pages TEXT,
			fields_json TEXT NOT NULL,
			header_line INTEGER
		);

		-- Index for citekey lookups
		CREATE INDEX IF NOT EXISTS idx_entries_citekey ON entries(citekey);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS entries_fts USING fts5(
			citekey,
			title,
			author
		);
	`

	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the database and repopulates it from records. Returns
// the number of records inserted.
func (d *DB) Rebuild(records []Record) (int, error) {
	if _, err := d.db.Exec("DELETE FROM entries"); err != nil {
		return 0, fmt.Errorf("clearing entries table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM entries_fts"); err != nil {
		return 0, fmt.Errorf("clearing entries_fts table: %w", err)
	}

	entriesStmt, err := d.db.Prepare(`
		INSERT INTO entries (
			citekey, bib_key, entry_type, author, title,
			journal, volume, year, pages, fields_json, header_line
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing entries insert: %w", err)
	}
	defer entriesStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO entries_fts (citekey, title, author)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for _, record := range records {
		fieldsJSON, err := json.Marshal(record.Fields)
		if err != nil {
			return 0, fmt.Errorf("marshaling fields for %s: %w", record.Citekey, err)
		}

		_, err = entriesStmt.Exec(
			record.Citekey, record.BibKey, record.Type, record.Author, record.Title,
			record.Journal, record.Volume, record.Year, record.Pages,
			string(fieldsJSON), record.Line,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting entry %s: %w", record.Citekey, err)
		}

		_, err = ftsStmt.Exec(record.Citekey, record.Title, record.Author)
		if err != nil {
			return 0, fmt.Errorf("inserting fts for %s: %w", record.Citekey, err)
		}
	}

	return len(records), nil
}

// GetByCitekey retrieves the first entry with the given citekey, or nil
// if none exists.
func (d *DB) GetByCitekey(key string) (*Record, error) {
	row := d.db.QueryRow(`SELECT `+selectRecordFields+` FROM entries WHERE citekey = ?`, key)
	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying citekey %s: %w", key, err)
	}
	return &record, nil
}

// Search performs a full-text search over titles and authors.
func (d *DB) Search(query string, limit int) ([]Record, error) {
	rows, err := d.db.Query(`
		SELECT `+selectRecordFields+`
		FROM entries
		WHERE citekey IN (SELECT citekey FROM entries_fts WHERE entries_fts MATCH ?)
		LIMIT ?`, prepareFTSQuery(query), limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// SearchField performs a full-text search restricted to one field.
// Supported fields are "title" and "author".
func (d *DB) SearchField(field, value string, limit int) ([]Record, error) {
	switch field {
	case "title", "author":
	default:
		return nil, fmt.Errorf("unknown search field: %s", field)
	}

	rows, err := d.db.Query(`
		SELECT `+selectRecordFields+`
		FROM entries
		WHERE citekey IN (SELECT citekey FROM entries_fts WHERE entries_fts MATCH ?)
		LIMIT ?`, field+":"+prepareFTSQuery(value), limit)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", field, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// CountByType returns the number of indexed entries per entry type.
func (d *DB) CountByType() (map[string]int, error) {
	rows, err := d.db.Query(`SELECT entry_type, COUNT(*) FROM entries GROUP BY entry_type`)
	if err != nil {
		return nil, fmt.Errorf("counting entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var entryType string
		var n int
		if err := rows.Scan(&entryType, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[entryType] = n
	}
	return counts, rows.Err()
}

// prepareFTSQuery quotes the query so FTS5 treats it as a phrase rather
// than query syntax.
func prepareFTSQuery(query string) string {
	return `"` + query + `"`
}

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecord reads one record from a row.
func scanRecord(row scanner) (Record, error) {
	var record Record
	var fieldsJSON string
	err := row.Scan(
		&record.Citekey, &record.BibKey, &record.Type, &record.Author, &record.Title,
		&record.Journal, &record.Volume, &record.Year, &record.Pages,
		&fieldsJSON, &record.Line,
	)
	if err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(fieldsJSON), &record.Fields); err != nil {
		return Record{}, fmt.Errorf("parsing fields for %s: %w", record.Citekey, err)
	}
	return record, nil
}

// scanRecords reads all records from a result set.
func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
