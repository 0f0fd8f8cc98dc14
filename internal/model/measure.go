// Package model defines the domain types and validation rules for the
// county health rankings dataset.  The dataset is static and read-only,
// so the types here carry no lifecycle beyond scanning rows out of SQLite.
package model

import "regexp"

// allowedMeasures enumerates the twelve measure names the API accepts.
// The strings must match the dataset's measure_name column exactly,
// including capitalization ("Premature Death" is capitalized in the data,
// "Adult obesity" is not).
var allowedMeasures = map[string]bool{
	"Violent crime rate":              true,
	"Unemployment":                    true,
	"Children in poverty":             true,
	"Diabetic screening":              true,
	"Mammography screening":           true,
	"Preventable hospital stays":      true,
	"Uninsured":                       true,
	"Sexually transmitted infections": true,
	"Physical inactivity":             true,
	"Adult obesity":                   true,
	"Premature Death":                 true,
	"Daily fine particulate matter":   true,
}

var zipRe = regexp.MustCompile(`^\d{5}$`)

// IsAllowedMeasure reports whether name is one of the twelve recognized
// public-health measures.  Matching is exact; no trimming or case folding.
func IsAllowedMeasure(name string) bool {
	return allowedMeasures[name]
}

// ValidZip reports whether s is a 5-digit ZIP code.
func ValidZip(s string) bool {
	return zipRe.MatchString(s)
}
