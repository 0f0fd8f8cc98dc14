package router // package router defines how HTTP routes are registered for the API

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/sunnyliu/county-health-api/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers every route the service exposes on the provided
// Echo instance.  The API surface is deliberately small: two liveness
// endpoints and the single county data lookup.
func RegisterRoutes(e *echo.Echo, h *handler.CountyDataHandler) {
	// Liveness probes.  GET / mirrors the historical behavior of the
	// dataset tooling; /healthz is for load balancers and monitoring.
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)

	// The lookup endpoint accepts POST only.  Registering just the POST
	// route lets Echo answer any other verb on the path with 405, which
	// the error handler below renders in the API's JSON envelope.
	e.POST("/county_data", h.CountyData)
}

// NewHTTPErrorHandler renders framework-level errors (unknown route,
// method not allowed) in the same {"error": ...} envelope the handlers
// use, so clients never see two response shapes.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, echo.Map{"error": msg})
	}
}
