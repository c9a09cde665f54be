package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skema "github.com/reoring/skema"
)

const fixture = "../../../country/testdata/europe.json"

// run executes the CLI in-process with colors off and an empty HOME so no
// user configuration leaks into the test.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(skema.UseDefaultJSONDriver)

	cmd := NewRootCommand()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color", "--log-level", "error"}, args...))
	err = cmd.Execute()
	return out.String(), errb.String(), err
}

func readFixture(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile(fixture)
	require.NoError(t, err)
	return b
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "skema", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	registered := map[string]bool{}
	for _, c := range cmd.Commands() {
		registered[c.Name()] = true
	}
	for _, expected := range []string{"version", "decode", "encode", "schema", "list"} {
		assert.True(t, registered[expected], "expected command %s to be registered", expected)
	}

	for _, flag := range []string{"config", "no-color", "log-level", "language", "driver", "max-bytes", "max-depth", "duplicate-keys", "number-mode"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "expected persistent flag --%s", flag)
	}
}

func TestNewVersionCommand(t *testing.T) {
	Version = "1.0.0-test"
	GitCommit = "abc123"
	BuildDate = "2026-01-01"
	GoVersion = "go1.25"
	t.Cleanup(func() {
		Version, GitCommit, BuildDate, GoVersion = "dev", "unknown", "unknown", "unknown"
	})

	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "skema version: 1.0.0-test")
	assert.Contains(t, out, "Git commit: abc123")
	assert.Contains(t, out, "Build date: 2026-01-01")
	assert.Contains(t, out, "Go version: go1.25")
}

func TestInvalidConfigValue(t *testing.T) {
	_, _, err := run(t, "", "--duplicate-keys", "sometimes", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate_keys must be one of")
}

func TestConfigFile(t *testing.T) {
	cfg := writeTemp(t, "skema.yaml", []byte("duplicate_keys: error\n"))

	_, stderr, err := run(t, `[{"cca3":"ESP","cca3":"PRT"}]`, "--config", cfg, "decode")
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, stderr, "DUPLICATE_KEY")
}

func TestExplicitConfigFileMissing(t *testing.T) {
	_, _, err := run(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
