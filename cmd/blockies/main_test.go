package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolasavic/blockies/internal/blockie"
	"github.com/nikolasavic/blockies/internal/config"
	"github.com/nikolasavic/blockies/internal/palette"
	"github.com/nikolasavic/blockies/internal/render"
)

// isolate points config discovery at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvPreset, "")
	return dir
}

// runCmd invokes the CLI and returns (stdout, stderr, exitCode).
func runCmd(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func expectedOutput(t *testing.T, seed string, preset blockie.Preset, opts blockie.Options) string {
	t.Helper()
	lines, err := blockie.Render(seed, preset, opts)
	require.NoError(t, err)
	return strings.Join(lines, "\n") + "\n" + seed + "\n"
}

func TestRenderSeed(t *testing.T) {
	isolate(t)

	stdout, stderr, code := runCmd(t, "cafebabe")
	require.Equal(t, ExitOK, code, "stderr: %s", stderr)
	assert.Equal(t, expectedOutput(t, "cafebabe", blockie.V1, blockie.Options{}), stdout)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, 8, strings.Count(lines[0], render.LowerHalfBlock))
	assert.Equal(t, "cafebabe", lines[4])
}

func TestRenderSeedLowerCased(t *testing.T) {
	isolate(t)

	upper, _, code := runCmd(t, "CAFEBABE")
	require.Equal(t, ExitOK, code)
	lower, _, _ := runCmd(t, "cafebabe")
	assert.Equal(t, lower, upper)
}

func TestRenderPresetV2(t *testing.T) {
	isolate(t)

	stdout, stderr, code := runCmd(t, "--preset", "v2", "cafebabe")
	require.Equal(t, ExitOK, code, "stderr: %s", stderr)
	assert.Equal(t, expectedOutput(t, "cafebabe", blockie.V2, blockie.Options{}), stdout)
	assert.Equal(t, 6, strings.Count(stdout, "\n"))
}

func TestRenderColorOverride(t *testing.T) {
	isolate(t)

	stdout, stderr, code := runCmd(t, "--color", "0.5,0.5,0.5", "cafebabe")
	require.Equal(t, ExitOK, code, "stderr: %s", stderr)

	mainColor := palette.Color{Hue: 0.5, Saturation: 0.5, Lightness: 0.5}
	assert.Equal(t, expectedOutput(t, "cafebabe", blockie.V1, blockie.Options{Main: &mainColor}), stdout)
	assert.Contains(t, stdout, "48;2;64;191;192m")
}

func TestRenderConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preset: v2\n"), 0o600))

	stdout, stderr, code := runCmd(t, "--config", path, "cafebabe")
	require.Equal(t, ExitOK, code, "stderr: %s", stderr)
	assert.Equal(t, expectedOutput(t, "cafebabe", blockie.V2, blockie.Options{}), stdout)

	// the flag beats the file
	stdout, _, code = runCmd(t, "--config", path, "--preset", "v1", "cafebabe")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, expectedOutput(t, "cafebabe", blockie.V1, blockie.Options{}), stdout)
}

func TestRenderEnvPreset(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvPreset, "v2")

	stdout, _, code := runCmd(t, "cafebabe")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, expectedOutput(t, "cafebabe", blockie.V2, blockie.Options{}), stdout)
}

func TestTestMode(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "vanity.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vanity: [alpha, beta, gamma]\n"), 0o600))

	stdout, stderr, code := runCmd(t, "--config", path, "--test")
	require.Equal(t, ExitOK, code, "stderr: %s", stderr)

	want := expectedOutput(t, "alpha", blockie.V1, blockie.Options{}) +
		expectedOutput(t, "beta", blockie.V1, blockie.Options{}) +
		expectedOutput(t, "gamma", blockie.V1, blockie.Options{})
	assert.Equal(t, want, stdout)
}

func TestTestModeDefaultVanity(t *testing.T) {
	isolate(t)

	stdout, _, code := runCmd(t, "--test", "--preset", "v2")
	require.Equal(t, ExitOK, code)
	for _, seed := range config.DefaultVanity {
		assert.Contains(t, stdout, "\n"+seed+"\n")
	}
	assert.Equal(t, len(config.DefaultVanity)*6, strings.Count(stdout, "\n"))
}

func TestRandomSeed(t *testing.T) {
	isolate(t)
	old := randSeedFn
	randSeedFn = func() string { return "0x2386f26fc0ffff" }
	t.Cleanup(func() { randSeedFn = old })

	stdout, _, code := runCmd(t, "--random")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, expectedOutput(t, "0x2386f26fc0ffff", blockie.V1, blockie.Options{}), stdout)
}

func TestRandSeedFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		s := randSeedFn()
		require.True(t, strings.HasPrefix(s, "0x"), s)
		assert.LessOrEqual(t, len(s), 2+14, s)
	}
}

func TestUsageErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no seed", nil},
		{"two seeds", []string{"a", "b"}},
		{"test with seed", []string{"--test", "a"}},
		{"random with seed", []string{"--random", "a"}},
		{"bad preset", []string{"--preset", "v7", "a"}},
		{"bad color", []string{"--color", "1,2", "a"}},
		{"color out of range", []string{"--spotcolor", "0.5,0.5,3", "a"}},
		{"unknown flag", []string{"--nope", "a"}},
		{"palette without seed", []string{"palette"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCmd(t, tt.args...)
			assert.Equal(t, ExitUsage, code, "stderr: %s", stderr)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "error:")
		})
	}
}

func TestConfigErrors(t *testing.T) {
	dir := isolate(t)

	_, stderr, code := runCmd(t, "--config", filepath.Join(dir, "missing.yaml"), "a")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "read config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("preset: v5\n"), 0o600))
	_, stderr, code = runCmd(t, "--config", bad, "a")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "invalid config")
}

func TestVerboseLogsToStderr(t *testing.T) {
	isolate(t)

	stdout, stderr, code := runCmd(t, "-v", "cafebabe")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, expectedOutput(t, "cafebabe", blockie.V1, blockie.Options{}), stdout)
	assert.Contains(t, stderr, "blockie generated")
	assert.Contains(t, stderr, "#160909")
}

func TestJSONLogging(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "json.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: {level: debug, format: json}\n"), 0o600))

	_, stderr, code := runCmd(t, "--config", path, "cafebabe")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, stderr, `"msg":"blockie generated"`)
	assert.Contains(t, stderr, `"seed":"cafebabe"`)
}

func TestPaletteCmd(t *testing.T) {
	isolate(t)

	stdout, stderr, code := runCmd(t, "palette", "CafeBabe")
	require.Equal(t, ExitOK, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "#160909")
	assert.Contains(t, stdout, "#1b5d46")
	assert.Contains(t, stdout, "#079a36")
	assert.Contains(t, stdout, "distance")
	assert.Contains(t, stdout, "cafebabe (v1)")

	stdout, _, code = runCmd(t, "palette", "--preset", "v2", "cafebabe")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "#ea8d3b")
	assert.Contains(t, stdout, "cafebabe (v2)")
}

func TestVersionCmd(t *testing.T) {
	stdout, _, code := runCmd(t, "version")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "blockies dev (commit: none, built: unknown)\n", stdout)
}

func TestParseHSL(t *testing.T) {
	c, err := parseHSL("0.1, 0.2 ,0.3")
	require.NoError(t, err)
	assert.Equal(t, palette.Color{Hue: 0.1, Saturation: 0.2, Lightness: 0.3}, c)

	for _, bad := range []string{"", "1,2", "a,b,c", "0.1,0.2,0.3,0.4", "-0.1,0,0"} {
		_, err := parseHSL(bad)
		assert.Error(t, err, "parseHSL(%q)", bad)
	}
}
