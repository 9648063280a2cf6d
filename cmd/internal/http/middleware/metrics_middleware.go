package middleware

import (
	"reurb/cmd/internal/metrics"
	"time"

	"github.com/labstack/echo/v4"
)

// NewMetricsMiddleware records every request by route template, so ids in
// the path do not create new series.
func NewMetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(c.Request().Method, route, c.Response().Status, start)
			return nil
		}
	}
}
