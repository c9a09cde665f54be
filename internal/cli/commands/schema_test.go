package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSchema_JSON(t *testing.T) {
	out, _, err := run(t, "", "schema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", doc["$schema"])
	assert.Equal(t, "array", doc["type"])
	assert.Equal(t, map[string]any{"$ref": "#/$defs/Country"}, doc["items"])

	defs, ok := doc["$defs"].(map[string]any)
	require.True(t, ok)
	for _, name := range []string{"Country", "Name", "Currencies", "BAM", "All", "Region"} {
		assert.Contains(t, defs, name)
	}
}

func TestSchema_YAML(t *testing.T) {
	out, _, err := run(t, "", "schema", "--format", "yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Country list", doc["title"])
}

func TestSchema_UnknownFormat(t *testing.T) {
	_, _, err := run(t, "", "schema", "-f", "toml")
	require.Error(t, err)
}
