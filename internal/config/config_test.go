package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enum-generator/internal/schema"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "enumgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"./..."}, cfg.Packages)
	assert.Empty(t, cfg.Types)
	assert.Equal(t, "array", cfg.Realization)
	assert.Equal(t, "_enum.go", cfg.Suffix)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, schema.RealizationArray, cfg.RealizationValue())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
packages: ["./internal/...", "./pkg/colors"]
types: [Words, Shape]
realization: chain
suffix: _gen.go
workers: 3
build_tags: [integration]
log_level: debug
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"./internal/...", "./pkg/colors"}, cfg.Packages)
	assert.Equal(t, []string{"Words", "Shape"}, cfg.Types)
	assert.Equal(t, schema.RealizationChain, cfg.RealizationValue())
	assert.Equal(t, "_gen.go", cfg.Suffix)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, []string{"integration"}, cfg.BuildTags)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enumgen.yaml"), []byte("workers: 7\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workers)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "realization: array\nworkers: 2\n")
	t.Setenv("ENUMGEN_REALIZATION", "chain")
	t.Setenv("ENUMGEN_WORKERS", "5")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "chain", cfg.Realization)
	assert.Equal(t, 5, cfg.Workers)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	path := writeConfig(t, "realization: array\nsuffix: _file.go\n")
	t.Setenv("ENUMGEN_REALIZATION", "array")

	fs := pflag.NewFlagSet("gen", pflag.ContinueOnError)
	fs.String("realization", "array", "")
	fs.String("suffix", "_enum.go", "")
	fs.Bool("dry-run", false, "")
	fs.StringSlice("types", nil, "")
	require.NoError(t, fs.Parse([]string{"--realization=chain", "--dry-run", "--types=Words,Shape"}))

	v := New()
	require.NoError(t, BindFlags(v, fs))

	cfg, err := Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, "chain", cfg.Realization)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, []string{"Words", "Shape"}, cfg.Types)
	assert.Equal(t, "_file.go", cfg.Suffix, "unset flags do not override the file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"realization": "realization: linked\n",
		"workers":     "workers: -1\n",
		"suffix":      "suffix: _enum.txt\n",
		"log_level":   "log_level: loud\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(New(), writeConfig(t, content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for in, want := range tests {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("verbose")
	require.Error(t, err)
}
