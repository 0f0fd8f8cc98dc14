package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sunnyliu/county-health-api/internal/model"
	"github.com/sunnyliu/county-health-api/internal/queue"
	"github.com/sunnyliu/county-health-api/internal/repository"
	queue_publisher "github.com/sunnyliu/county-health-api/internal/service"
)

// CountyDataHandler bundles dependencies for the county data lookup endpoint.
type CountyDataHandler struct {
	Rankings       *repository.RankingRepo
	PublishLookups bool // emit a LookupEvent after each successful lookup
}

// NewCountyDataHandler constructs the handler and panics if the repository is nil.
func NewCountyDataHandler(rankings *repository.RankingRepo, publishLookups bool) *CountyDataHandler {
	if rankings == nil {
		panic("nil repository passed to NewCountyDataHandler")
	}
	return &CountyDataHandler{Rankings: rankings, PublishLookups: publishLookups}
}

// CountyData serves POST /county_data.  The body must be a JSON object with
// "zip" (5-digit, string or number) and "measure_name" (one of the twelve
// recognized measures).  A body carrying {"coffee":"teapot"} short-circuits
// to 418 before any other validation.  Matching rows come back as a JSON
// array; valid inputs with no rows are a 404.
func (h *CountyDataHandler) CountyData(c echo.Context) error {
	// Decode by hand rather than c.Bind: UseNumber keeps a numeric zip
	// like 12345 from turning into the float string "12345.0", and a
	// non-object body (array, string, number) must be rejected outright.
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil || body == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "request body must be a JSON object"})
	}
	// A single object and nothing else: trailing tokens or garbage after
	// the closing brace make the body malformed as a whole.
	if dec.More() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "request body must be a single JSON object"})
	}

	// Teapot easter egg supersedes everything
	if coffee, ok := body["coffee"].(string); ok && coffee == "teapot" {
		return c.JSON(http.StatusTeapot, echo.Map{"error": "I'm a teapot"})
	}

	zip := coerceZip(body["zip"])
	measure, _ := body["measure_name"].(string)
	if zip == "" || measure == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "both 'zip' and 'measure_name' are required"})
	}
	if !model.ValidZip(zip) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ZIP code must be a 5-digit number"})
	}
	if !model.IsAllowedMeasure(measure) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid 'measure_name' value"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Rankings.FindByZipAndMeasure(ctx, zip, measure)
	if err != nil {
		if errors.Is(err, repository.ErrNoData) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no data for given zip and measure_name"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if h.PublishLookups {
		ev := queue.NewLookupEvent(zip, measure, rows)
		// Fire and forget: the broker must never slow down or fail a lookup.
		go func() { _ = queue_publisher.PublishLookup(context.Background(), ev) }()
	}

	return c.JSON(http.StatusOK, rows)
}

// coerceZip turns the raw JSON value of "zip" into a string.  Strings pass
// through, numbers keep their literal form (json.Number), anything else
// coerces to empty and fails the presence check.
func coerceZip(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	}
	return ""
}
