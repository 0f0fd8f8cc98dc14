// Command csvimport loads a CSV file into the SQLite dataset.  The table
// name is taken from the CSV filename, so
//
//	csvimport data.db county_health_rankings.csv
//
// creates (or replaces) the county_health_rankings table in data.db.
package main

import (
	"fmt"
	"os"

	"github.com/sunnyliu/county-health-api/internal/database"
	"github.com/sunnyliu/county-health-api/internal/importer"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: csvimport <database.db> <input.csv>")
		os.Exit(1)
	}
	dbPath, csvPath := os.Args[1], os.Args[2]

	if _, err := os.Stat(csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "csvimport: CSV file not found: %s\n", csvPath)
		os.Exit(2)
	}

	db, err := database.Open(dbPath, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "csvimport: open database: %v\n", err)
		os.Exit(3)
	}
	defer db.Close()

	table, total, err := importer.Import(db, csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "csvimport: %v\n", err)
		os.Exit(4)
	}

	fmt.Printf("Imported %d rows into table %q in database %q.\n", total, table, dbPath)
}
