package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRunWritesBothRenderings(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, run(dir, "2.0.0"))

	raw, err := os.ReadFile(filepath.Join(dir, "openapi.json"))
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(raw, &fromJSON))

	raw, err = os.ReadFile(filepath.Join(dir, "openapi.yaml"))
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &fromYAML))

	assert.Equal(t, "3.0.3", fromJSON["openapi"])
	assert.Equal(t, "2.0.0", fromJSON["info"].(map[string]any)["version"])
	assert.Len(t, fromJSON["paths"], 8)
	assert.Len(t, fromYAML["paths"], 8)
}
