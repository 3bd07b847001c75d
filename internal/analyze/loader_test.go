package analyze

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer(Options{Suffix: "_enum.go"})
	decls, err := analyzer.LoadPackages(context.Background(),
		"enum-generator/examples/words", "enum-generator/examples/shapes")
	require.NoError(t, err)

	byName := make(map[string]EnumDecl)
	for _, d := range decls {
		byName[d.Name] = d
	}

	words, ok := byName["Words"]
	require.True(t, ok)
	assert.Equal(t, KindConst, words.Kind)
	assert.Equal(t, "enum-generator/examples/words", words.Package)
	assert.Equal(t, []string{"Foo", "HelloWorld", "Bar", "Quux"}, words.VariantNames())

	shape, ok := byName["Shape"]
	require.True(t, ok)
	assert.Equal(t, KindUnion, shape.Kind)
	assert.Contains(t, shape.VariantNames(), "Circle")
}

func TestAnalyzer_LoadPackages_Missing(t *testing.T) {
	analyzer := NewAnalyzer(Options{})
	_, err := analyzer.LoadPackages(context.Background(), "enum-generator/examples/does-not-exist")
	require.Error(t, err)
}

func TestAnalyzer_LoadPackages_TypeErrorsDoNotStopExtraction(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/level\n\ngo 1.24\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level.go"), []byte(`package level

//enum:name(base = "title case")
type Level int

const (
	Low Level = iota
	High
)

func describe(l Level) string { return l.Name() }
`), 0o644))

	analyzer := NewAnalyzer(Options{Dir: dir, Suffix: "_enum.go"})
	decls, err := analyzer.LoadPackages(context.Background(), "./...")

	var typeErrs *TypeCheckError
	require.ErrorAs(t, err, &typeErrs)
	require.Len(t, typeErrs.Errors, 1)
	assert.Contains(t, typeErrs.Error(), "l.Name undefined")

	pos := ErrorPosition(typeErrs.Errors[0])
	assert.Equal(t, "level.go", filepath.Base(pos.Filename))
	assert.Equal(t, 11, pos.Line)

	require.Len(t, decls, 1)
	assert.Equal(t, []string{"Low", "High"}, decls[0].VariantNames())
}

func TestAnalyzer_LoadPackages_SyntaxErrorIsFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/bad\n\ngo 1.24\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.go"), []byte("package bad\n\nfunc {\n"), 0o644))

	_, err := NewAnalyzer(Options{Dir: dir}).LoadPackages(context.Background(), "./...")
	require.Error(t, err)

	var typeErrs *TypeCheckError
	assert.False(t, errors.As(err, &typeErrs))
}

func TestErrorPosition(t *testing.T) {
	tests := []struct {
		pos          string
		file         string
		line, column int
	}{
		{"/src/words.go:29:35", "/src/words.go", 29, 35},
		{"/src/words.go:29", "/src/words.go", 29, 0},
		{"/src/words.go", "/src/words.go", 0, 0},
		{"", "", 0, 0},
		{`C:\src\words.go:3:1`, `C:\src\words.go`, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.pos, func(t *testing.T) {
			pos := ErrorPosition(packages.Error{Pos: tt.pos})
			assert.Equal(t, tt.file, pos.Filename)
			assert.Equal(t, tt.line, pos.Line)
			assert.Equal(t, tt.column, pos.Column)
		})
	}
}
