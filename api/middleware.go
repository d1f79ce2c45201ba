package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Aidin1998/walletapi/api/responses"
	"github.com/Aidin1998/walletapi/pkg/metrics"
)

// RequestIDHeader carries the request identifier in and out.
const RequestIDHeader = "X-Request-ID"

// requestIDMiddleware reuses the caller's request id or mints one, and
// exposes it to error bodies and the response headers.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(responses.TraceIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// metricsMiddleware records request counts and durations for Prometheus and
// the OpenTelemetry meter.
func metricsMiddleware(requests metric.Int64Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(path, method, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())

		requests.Add(c.Request.Context(), 1, metric.WithAttributes(
			attribute.String("http.route", path),
			attribute.String("http.request.method", method),
			attribute.Int("http.response.status_code", c.Writer.Status()),
		))
	}
}
