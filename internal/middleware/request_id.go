package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the context key the trace ID is stored under
	TraceIDContextKey = "trace_id"

	// maxTraceIDLength bounds client-supplied trace IDs before they reach logs
	maxTraceIDLength = 64
)

// RequestID assigns a trace ID to every request, honoring a client-supplied
// X-Trace-ID when present. The ID is stored on the context and echoed back
// in the response header so clients can correlate error reports.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" || len(traceID) > maxTraceIDLength {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID for the request, or "" if the middleware
// has not run.
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
