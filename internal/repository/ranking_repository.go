package repository

import (
	"context"
	"database/sql"

	"github.com/sunnyliu/county-health-api/internal/model"
)

// RankingRepo provides read access to the county_health_rankings table.
type RankingRepo struct {
	db *sql.DB
}

// NewRankingRepo constructs a RankingRepo over an open dataset handle.
func NewRankingRepo(db *sql.DB) *RankingRepo {
	if db == nil {
		panic("nil db passed to NewRankingRepo")
	}
	return &RankingRepo{db: db}
}

// FindByZipAndMeasure returns every ranking row for the counties covering
// the given ZIP code, filtered to one measure.  A ZIP that spans several
// counties yields the union of their rows.  Rows come back oldest release
// first so clients see the measure's history in order.  Returns ErrNoData
// when nothing matches.
func (r *RankingRepo) FindByZipAndMeasure(ctx context.Context, zip, measure string) ([]model.CountyHealthRanking, error) {
	// fipscode and county_code are both stored as TEXT but the CAST keeps
	// the join correct if either column is ever re-imported as a number.
	// COALESCE because the importer stores empty CSV cells as NULL.
	const q = `SELECT
			COALESCE(chr.state, ''),
			COALESCE(chr.county, ''),
			COALESCE(chr.state_code, ''),
			COALESCE(chr.county_code, ''),
			COALESCE(chr.year_span, ''),
			COALESCE(chr.measure_name, ''),
			COALESCE(chr.measure_id, ''),
			COALESCE(chr.numerator, ''),
			COALESCE(chr.denominator, ''),
			COALESCE(chr.raw_value, ''),
			COALESCE(chr.confidence_interval_lower_bound, ''),
			COALESCE(chr.confidence_interval_upper_bound, ''),
			COALESCE(chr.data_release_year, ''),
			COALESCE(chr.fipscode, '')
		FROM county_health_rankings AS chr
		JOIN zip_county AS z
		  ON CAST(chr.fipscode AS TEXT) = CAST(z.county_code AS TEXT)
		WHERE z.zip = ? AND chr.measure_name = ?
		ORDER BY CAST(chr.data_release_year AS INTEGER) ASC, chr.year_span ASC`

	rows, err := r.db.QueryContext(ctx, q, zip, measure)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CountyHealthRanking
	for rows.Next() {
		var m model.CountyHealthRanking
		if err := rows.Scan(
			&m.State,
			&m.County,
			&m.StateCode,
			&m.CountyCode,
			&m.YearSpan,
			&m.MeasureName,
			&m.MeasureID,
			&m.Numerator,
			&m.Denominator,
			&m.RawValue,
			&m.CILowerBound,
			&m.CIUpperBound,
			&m.DataReleaseYear,
			&m.FIPSCode,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoData
	}
	return out, nil
}
