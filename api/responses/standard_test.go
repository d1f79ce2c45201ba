package responses

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/Aidin1998/walletapi/pkg/errors"
)

func newContext(path string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, w
}

func TestBadRequest_IntegerParameter(t *testing.T) {
	c, w := newContext("/users/abc")
	c.Set(TraceIDKey, "req-1")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	_, err := strconv.ParseInt("abc", 10, 32)
	BadRequest(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ProblemContentType, w.Header().Get("Content-Type"))
	assert.True(t, c.IsAborted())

	var problem apierrors.ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, apierrors.TypeValidationError, problem.Type)
	assert.Equal(t, "/users/abc", problem.Instance)
	assert.Equal(t, "req-1", problem.TraceID)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "invalid_integer", problem.Errors[0].Code)
	assert.Equal(t, "id", problem.Errors[0].Field)
}

func TestBadRequest_QueryParameterName(t *testing.T) {
	c, w := newContext("/users?page=1&limit=ten")

	_, err := strconv.ParseInt("ten", 10, 32)
	BadRequest(c, err)

	var problem apierrors.ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "limit", problem.Errors[0].Field)
}

func TestMethodNotAllowed(t *testing.T) {
	c, w := newContext("/health")

	MethodNotAllowed(c, "POST is not supported on /health")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	var problem apierrors.ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, apierrors.TypeMethodNotAllowed, problem.Type)
	assert.Equal(t, "/health", problem.Instance)
}

func TestNotFound_TraceFromHeader(t *testing.T) {
	c, w := newContext("/nowhere")
	c.Request.Header.Set("X-Request-ID", "from-header")

	NotFound(c, "no route")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var problem apierrors.ProblemDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, "from-header", problem.TraceID)
	assert.Equal(t, "no route", problem.Detail)
}

func TestInternalServerError(t *testing.T) {
	c, w := newContext("/health")
	InternalServerError(c, errors.New("boom").Error())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
