// Package repository implements the data access layer over the read-only
// SQLite dataset.  Sentinel errors defined here let handlers translate
// failure scenarios into HTTP status codes without inspecting SQL state.
package repository

import "errors"

// ErrNoData is returned when a lookup with valid inputs matches zero
// rows, either because the ZIP is not in the crosswalk or because no
// ranking rows exist for the measure in the ZIP's counties.  Handlers
// should translate this into an HTTP 404 response.
var ErrNoData = errors.New("no data")
