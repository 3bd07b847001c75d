package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "enum-generator version "+Version+"\n", out)
}

func TestCheck_Valid(t *testing.T) {
	out, _, err := execute(t, "check", "enum-generator/examples/words", "enum-generator/examples/shapes")
	require.NoError(t, err)
	assert.Contains(t, out, "3 enumerations, 3 ok, 0 failed")
}

func TestCheck_Diagnostics(t *testing.T) {
	out, errOut, err := execute(t, "check", "./testdata/broken")
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, errOut, "[missing_base]")
	assert.Contains(t, errOut, "Color")
	assert.NotContains(t, errOut, "Size:")
	assert.Empty(t, out)
}

func TestTable(t *testing.T) {
	out, _, err := execute(t, "table", "enum-generator/examples/words")
	require.NoError(t, err)
	assert.Contains(t, out, "enum: Words")
	assert.Contains(t, out, "Hello Worlds")
	assert.Contains(t, out, `"Quuxes" # override`)
}

func TestTable_PartialFailure(t *testing.T) {
	out, errOut, err := execute(t, "table", "./testdata/broken")
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, out, "enum: Size")
	assert.NotContains(t, out, "enum: Color")
	assert.Contains(t, errOut, "[missing_base]")
}

func TestGen_DryRun(t *testing.T) {
	_, errOut, err := execute(t, "gen", "--dry-run", "enum-generator/examples/words")
	require.NoError(t, err)
	assert.Contains(t, errOut, "1 enumerations, 1 ok, 0 failed, 0 files written")
}

func TestInvalidRealization(t *testing.T) {
	_, _, err := execute(t, "check", "--realization", "linked", "enum-generator/examples/words")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "realization")
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "check", "--config", "does-not-exist.yaml", "enum-generator/examples/words")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
