package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGinPath(t *testing.T) {
	tests := map[string]string{
		"/":                  "/",
		"/health":            "/health",
		"/users/{id}":        "/users/:id",
		"/wallets/{user_id}": "/wallets/:user_id",
		"/a/{b}/c/{d}":       "/a/:b/c/:d",
	}
	for in, want := range tests {
		assert.Equal(t, want, ginPath(in), in)
	}
}

func TestRouteTableHasHandlers(t *testing.T) {
	s := &Server{}
	seen := map[string]bool{}
	for _, r := range s.routeTable() {
		assert.NotNil(t, r.handler, r.OperationID)
		assert.NotEmpty(t, r.OperationID)
		assert.False(t, seen[r.OperationID], "duplicate operation id %s", r.OperationID)
		seen[r.OperationID] = true
	}
	assert.Len(t, seen, 10)
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.Empty(t, all.AllowOrigins)

	some := corsConfig([]string{"https://a.example.com", "https://b.example.com"})
	assert.False(t, some.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, some.AllowOrigins)
	assert.NoError(t, some.Validate())
}
