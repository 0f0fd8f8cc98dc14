// Package importer loads a CSV file into the SQLite dataset.  The table
// name is derived from the CSV filename, every column is created as TEXT,
// and an existing table of the same name is dropped first, so re-running
// an import replaces the data wholesale.
package importer

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Reserved keywords in SQLite (simplified subset) that may not be used as
// table or column names.
var sqliteKeywords = map[string]bool{
	"SELECT": true, "INSERT": true, "DELETE": true, "UPDATE": true,
	"CREATE": true, "DROP": true, "TABLE": true, "FROM": true,
	"WHERE": true, "AND": true, "OR": true, "NOT": true,
	"NULL": true, "IN": true, "IS": true, "LIKE": true,
	"BY": true, "GROUP": true, "ORDER": true, "HAVING": true,
	"AS": true, "JOIN": true, "ON": true, "UNION": true,
	"VALUES": true, "INTO": true,
}

// validIdentifier is a strict check for safe SQL identifiers: letters,
// digits and underscores, no leading digit, no reserved keyword.  Table
// and column names are interpolated into DDL, so nothing else passes.
func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return !sqliteKeywords[strings.ToUpper(name)]
}

// Import reads the CSV at csvPath into db.  It returns the table name it
// created and the number of rows inserted.  Empty cells are stored as
// NULL.  After importing one of the two dataset tables it also creates
// the index the lookup query depends on.
func Import(db *sql.DB, csvPath string) (string, int, error) {
	table := strings.TrimSuffix(filepath.Base(csvPath), filepath.Ext(csvPath))
	if !validIdentifier(table) {
		return "", 0, fmt.Errorf("invalid table name derived from CSV filename: %q", table)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; missing cells become NULL
	header, err := r.Read()
	if err != nil {
		return "", 0, fmt.Errorf("csv appears to be missing a header row: %w", err)
	}

	columns := make([]string, len(header))
	for i, col := range header {
		if i == 0 {
			// Strip a UTF-8 byte order mark left by spreadsheet exports
			col = strings.TrimPrefix(col, "\ufeff")
		}
		col = strings.TrimSpace(col)
		if !validIdentifier(col) {
			return "", 0, fmt.Errorf("invalid column name in header: %q", col)
		}
		columns[i] = col
	}

	tx, err := db.Begin()
	if err != nil {
		return "", 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DROP TABLE IF EXISTS " + table); err != nil {
		return "", 0, err
	}

	colDefs := make([]string, len(columns))
	for i, col := range columns {
		colDefs[i] = col + " TEXT"
	}
	if _, err := tx.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(colDefs, ", "))); err != nil {
		return "", 0, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), placeholders))
	if err != nil {
		return "", 0, err
	}
	defer stmt.Close()

	total := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, fmt.Errorf("read row %d: %w", total+1, err)
		}
		values := make([]any, len(columns))
		for i := range columns {
			if i < len(record) && record[i] != "" {
				values[i] = record[i]
			}
		}
		if _, err := stmt.Exec(values...); err != nil {
			return "", 0, fmt.Errorf("insert row %d: %w", total+1, err)
		}
		total++
	}

	if err := createLookupIndex(tx, table); err != nil {
		return "", 0, err
	}

	if err := tx.Commit(); err != nil {
		return "", 0, err
	}
	return table, total, nil
}

// createLookupIndex adds the index the /county_data query needs when the
// imported table is one of the two it reads from.  Other tables are left
// unindexed, matching the generic behavior of the importer.
func createLookupIndex(tx *sql.Tx, table string) error {
	switch table {
	case "zip_county":
		_, err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_zip_county_zip ON zip_county (zip)")
		return err
	case "county_health_rankings":
		_, err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_chr_measure_fips ON county_health_rankings (measure_name, fipscode)")
		return err
	}
	return nil
}
