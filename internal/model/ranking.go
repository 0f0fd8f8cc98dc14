package model

// CountyHealthRanking represents one row of the county_health_rankings
// table.  Every column is stored as TEXT by the importer, so all fields
// are strings and are returned to clients exactly as stored.
//
// Fields:
//
//	State          – full state name.
//	County         – county name.
//	StateCode      – two-digit state FIPS code.
//	CountyCode     – three-digit county FIPS code.
//	YearSpan       – measurement period, e.g. "2009" or "2005-2011".
//	MeasureName    – one of the twelve recognized measures.
//	MeasureID      – numeric identifier of the measure.
//	Numerator      – raw numerator of the statistic.
//	Denominator    – raw denominator of the statistic.
//	RawValue       – reported value of the statistic.
//	CILowerBound   – lower bound of the confidence interval.
//	CIUpperBound   – upper bound of the confidence interval.
//	DataReleaseYear – year the row was published.
//	FIPSCode       – combined five-digit county FIPS code.
type CountyHealthRanking struct {
	State           string `json:"state"`                           // county_health_rankings.state
	County          string `json:"county"`                          // county_health_rankings.county
	StateCode       string `json:"state_code"`                      // county_health_rankings.state_code
	CountyCode      string `json:"county_code"`                     // county_health_rankings.county_code
	YearSpan        string `json:"year_span"`                       // county_health_rankings.year_span
	MeasureName     string `json:"measure_name"`                    // county_health_rankings.measure_name
	MeasureID       string `json:"measure_id"`                      // county_health_rankings.measure_id
	Numerator       string `json:"numerator"`                       // county_health_rankings.numerator
	Denominator     string `json:"denominator"`                     // county_health_rankings.denominator
	RawValue        string `json:"raw_value"`                       // county_health_rankings.raw_value
	CILowerBound    string `json:"confidence_interval_lower_bound"` // county_health_rankings.confidence_interval_lower_bound
	CIUpperBound    string `json:"confidence_interval_upper_bound"` // county_health_rankings.confidence_interval_upper_bound
	DataReleaseYear string `json:"data_release_year"`               // county_health_rankings.data_release_year
	FIPSCode        string `json:"fipscode"`                        // county_health_rankings.fipscode
}
