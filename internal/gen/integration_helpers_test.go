package gen_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"enum-generator/internal/config"
	"enum-generator/internal/runner"
)

// runExampleIntegrationTest renders every enumeration of an example
// package into a temporary directory, then compiles and tests the example
// with the rendered files overlaid on the committed ones.
func runExampleIntegrationTest(t *testing.T, exampleName string) {
	t.Helper()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	cfg := config.Default()
	cfg.Packages = []string{"enum-generator/examples/" + exampleName}

	report, err := runner.New(cfg).Run(t.Context(), runner.ModeCheck)
	require.NoError(t, err)
	require.False(t, report.Diagnostics.HasErrors(), "%v", report.Diagnostics.Error())
	require.NotEmpty(t, report.Results)

	outDir := t.TempDir()
	overlay := struct {
		Replace map[string]string
	}{Replace: make(map[string]string)}

	for _, res := range report.Results {
		require.NotNil(t, res.File, res.Decl.Name)

		p := filepath.Join(outDir, res.File.Filename)
		require.NoError(t, os.WriteFile(p, res.File.Content, 0o600))

		overlay.Replace[res.File.Path()] = p
	}

	b, err := json.Marshal(overlay)
	require.NoError(t, err)

	overlayPath := filepath.Join(outDir, "overlay.json")
	require.NoError(t, os.WriteFile(overlayPath, b, 0o600))

	test := exec.CommandContext(t.Context(), "go", "test", "-count=1",
		"-overlay", overlayPath, "./examples/"+exampleName)
	test.Dir = repoRoot

	b, err = test.CombinedOutput()
	if err != nil {
		for _, res := range report.Results {
			t.Logf("generated file %s:\n%s", res.File.Filename, res.File.Content)
		}

		t.Fatalf("example tests failed: %v\n%s", err, string(b))
	}
}
