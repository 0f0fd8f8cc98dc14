package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// newTestDB opens an in-memory dataset with the two production tables and
// a handful of rows: ZIP 02138 spans two counties, Middlesex has two
// Adult obesity rows (inserted newest first to exercise the ordering),
// one Unemployment row and one Premature Death row with NULL cells.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// a second pool connection would see its own empty :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	stmts := []string{
		`CREATE TABLE zip_county (
			zip TEXT, default_state TEXT, county TEXT, county_state TEXT,
			state_abbreviation TEXT, county_code TEXT, zip_pop TEXT,
			zip_pop_in_county TEXT, n_counties TEXT, default_city TEXT
		)`,
		`CREATE TABLE county_health_rankings (
			state TEXT, county TEXT, state_code TEXT, county_code TEXT,
			year_span TEXT, measure_name TEXT, measure_id TEXT,
			numerator TEXT, denominator TEXT, raw_value TEXT,
			confidence_interval_lower_bound TEXT,
			confidence_interval_upper_bound TEXT,
			data_release_year TEXT, fipscode TEXT
		)`,
		`INSERT INTO zip_county (zip, state_abbreviation, county, county_code)
			VALUES ('02138', 'MA', 'Middlesex County', '25017')`,
		`INSERT INTO zip_county (zip, state_abbreviation, county, county_code)
			VALUES ('02138', 'MA', 'Another County', '25099')`,
		`INSERT INTO county_health_rankings VALUES
			('MA', 'Middlesex County', '25', '017', '2010', 'Adult obesity', '11',
			 '266426', '1143459.228', '0.233', '0.224', '0.242', '2014', '25017')`,
		`INSERT INTO county_health_rankings VALUES
			('MA', 'Middlesex County', '25', '017', '2009', 'Adult obesity', '11',
			 '60771.02', '263078', '0.23', '0.22', '0.24', '2012', '25017')`,
		`INSERT INTO county_health_rankings VALUES
			('MA', 'Another County', '25', '099', '2010', 'Adult obesity', '11',
			 '100', '1000', '0.1', '0.09', '0.11', '2013', '25099')`,
		`INSERT INTO county_health_rankings VALUES
			('MA', 'Middlesex County', '25', '017', '2010', 'Unemployment', '99',
			 '0', '0', '0', '0', '0', '2010', '25017')`,
		`INSERT INTO county_health_rankings VALUES
			('MA', 'Middlesex County', '25', '017', '2011', 'Premature Death', '1',
			 NULL, NULL, '0.5', NULL, NULL, '2011', '25017')`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return db
}

func TestFindByZipAndMeasureOrdersByReleaseYear(t *testing.T) {
	repo := NewRankingRepo(newTestDB(t))

	rows, err := repo.FindByZipAndMeasure(context.Background(), "02138", "Adult obesity")
	if err != nil {
		t.Fatalf("FindByZipAndMeasure: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	years := []string{rows[0].DataReleaseYear, rows[1].DataReleaseYear, rows[2].DataReleaseYear}
	want := []string{"2012", "2013", "2014"}
	for i := range want {
		if years[i] != want[i] {
			t.Fatalf("release years %v, want %v", years, want)
		}
	}
}

func TestFindByZipAndMeasureUnionsCounties(t *testing.T) {
	repo := NewRankingRepo(newTestDB(t))

	rows, err := repo.FindByZipAndMeasure(context.Background(), "02138", "Adult obesity")
	if err != nil {
		t.Fatalf("FindByZipAndMeasure: %v", err)
	}
	counties := map[string]bool{}
	for _, r := range rows {
		counties[r.County] = true
	}
	if !counties["Middlesex County"] || !counties["Another County"] {
		t.Fatalf("missing county in %v", counties)
	}
}

func TestFindByZipAndMeasureFiltersMeasure(t *testing.T) {
	repo := NewRankingRepo(newTestDB(t))

	rows, err := repo.FindByZipAndMeasure(context.Background(), "02138", "Unemployment")
	if err != nil {
		t.Fatalf("FindByZipAndMeasure: %v", err)
	}
	for _, r := range rows {
		if r.MeasureName != "Unemployment" {
			t.Fatalf("leaked measure %q", r.MeasureName)
		}
	}
}

func TestFindByZipAndMeasureRendersNullAsEmpty(t *testing.T) {
	repo := NewRankingRepo(newTestDB(t))

	rows, err := repo.FindByZipAndMeasure(context.Background(), "02138", "Premature Death")
	if err != nil {
		t.Fatalf("FindByZipAndMeasure: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Numerator != "" || rows[0].CILowerBound != "" {
		t.Fatalf("NULL columns should scan as empty strings: %+v", rows[0])
	}
	if rows[0].RawValue != "0.5" {
		t.Fatalf("raw_value = %q, want 0.5", rows[0].RawValue)
	}
}

func TestFindByZipAndMeasureNoData(t *testing.T) {
	repo := NewRankingRepo(newTestDB(t))

	for _, tc := range []struct{ zip, measure string }{
		{"00000", "Adult obesity"}, // unknown ZIP
		{"02138", "Uninsured"},     // known ZIP, no rows for measure
	} {
		_, err := repo.FindByZipAndMeasure(context.Background(), tc.zip, tc.measure)
		if !errors.Is(err, ErrNoData) {
			t.Fatalf("zip=%s measure=%s: got %v, want ErrNoData", tc.zip, tc.measure, err)
		}
	}
}
