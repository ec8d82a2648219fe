package middleware

import (
	"strconv"
	"time"

	"github.com/Madhav-Gupta-28/noemie-shop-go/logger"
	"github.com/Madhav-Gupta-28/noemie-shop-go/metrics"
	"github.com/labstack/echo/v4"
)

// RequestLogger logs every request through zerolog and counts it.
func RequestLogger(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			if m != nil {
				m.Requests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
			}

			event := logger.Info()
			if status >= 500 {
				event = logger.Error().Err(err)
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Str("session", SessionID(c)).
				Msg("request")
			return nil
		}
	}
}
