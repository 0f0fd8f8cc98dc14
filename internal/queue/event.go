// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/sunnyliu/county-health-api/internal/model"
)

// LookupQueueName is the durable queue carrying lookup events.
const LookupQueueName = "county_data.lookup"

// LookupEvent is published after each successful county data lookup.  It
// carries enough information for downstream consumers to log or feed
// analytics without querying the dataset themselves.
type LookupEvent struct {
	Zip         string   `json:"zip"`
	MeasureName string   `json:"measure_name"`
	Counties    []string `json:"counties"`
	RowCount    int      `json:"row_count"`
	LookedUpAt  string   `json:"looked_up_at"`
}

// NewLookupEvent builds a LookupEvent from the rows a lookup returned.
// Counties holds each distinct "County, ST" pair once, in row order.
func NewLookupEvent(zip, measure string, rows []model.CountyHealthRanking) LookupEvent {
	seen := map[string]bool{}
	var counties []string
	for _, r := range rows {
		name := r.County + ", " + r.State
		if !seen[name] {
			seen[name] = true
			counties = append(counties, name)
		}
	}
	return LookupEvent{
		Zip:         zip,
		MeasureName: measure,
		Counties:    counties,
		RowCount:    len(rows),
		LookedUpAt:  time.Now().UTC().Format(time.RFC3339),
	}
}
