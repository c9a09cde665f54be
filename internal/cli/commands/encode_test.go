package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_RoundTrip(t *testing.T) {
	records, _, err := run(t, "", "decode", "-o", "json", fixture)
	require.NoError(t, err)

	out, _, err := run(t, records, "encode")
	require.NoError(t, err)
	assert.JSONEq(t, string(readFixture(t)), out)
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"name\": {"), "declared fields come first, indented: %q", out[:40])
}

func TestEncode_Compact(t *testing.T) {
	out, _, err := run(t, string(readFixture(t)), "encode", "--compact")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `[{"name":{"common":"Spain"`), out[:40])
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestEncode_Violation(t *testing.T) {
	data := strings.Replace(string(readFixture(t)), `"side": "right"`, `"side": "middle"`, 1)

	out, stderr, err := run(t, data, "encode")
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "INVALID_ENUM: /0/car/side")
}
