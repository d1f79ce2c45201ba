// Package responses writes the API's error bodies.
package responses

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Aidin1998/walletapi/pkg/errors"
)

// ProblemContentType is the media type of every error body.
const ProblemContentType = "application/problem+json"

// TraceIDKey is the gin context key holding the request identifier.
const TraceIDKey = "trace_id"

// Error sends an error response using RFC 7807 format
func Error(c *gin.Context, problemDetails *errors.ProblemDetails) {
	if problemDetails.TraceID == "" {
		if traceID := getTraceID(c); traceID != "" {
			problemDetails.WithTraceID(traceID)
		}
	}

	c.Header("Content-Type", ProblemContentType)
	c.AbortWithStatusJSON(problemDetails.Status, problemDetails)
}

// BadRequest sends a 400 for a request that could not be decoded
func BadRequest(c *gin.Context, err error) {
	Error(c, errors.FromDecodeError(err, c.Request.URL.Path, requestParams(c)))
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, detail string) {
	Error(c, errors.NewNotFoundError(detail, c.Request.URL.Path))
}

// MethodNotAllowed sends a 405 Method Not Allowed response
func MethodNotAllowed(c *gin.Context, detail string) {
	Error(c, errors.NewMethodNotAllowedError(detail, c.Request.URL.Path))
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, detail string) {
	Error(c, errors.NewInternalError(detail, c.Request.URL.Path))
}

// requestParams merges the path parameters and the query string
func requestParams(c *gin.Context) url.Values {
	params := url.Values{}
	for _, p := range c.Params {
		params.Add(p.Key, p.Value)
	}
	for name, values := range c.Request.URL.Query() {
		params[name] = append(params[name], values...)
	}
	return params
}

// getTraceID extracts trace ID from context
func getTraceID(c *gin.Context) string {
	if traceID, exists := c.Get(TraceIDKey); exists {
		if id, ok := traceID.(string); ok {
			return id
		}
	}

	return c.GetHeader("X-Request-ID")
}
