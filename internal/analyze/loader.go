package analyze

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Options configures an Analyzer.
type Options struct {
	Dir       string   // Working directory for pattern resolution ("" = current)
	BuildTags []string // Extra build tags
	Suffix    string   // Generated file suffix; errors inside such files are tolerated
	Logger    *slog.Logger
}

// Analyzer loads Go packages and extracts annotated enumerations.
type Analyzer struct {
	opts   Options
	logger *slog.Logger
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts Options) *Analyzer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{opts: opts, logger: logger}
}

// LoadPackages loads the specified packages and returns their annotated
// enumerations, ordered by package and then by declaration.
// Patterns are standard Go package patterns (e.g., "./...", "enum-generator/examples/words").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]EnumDecl, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.opts.Dir,
	}
	if len(a.opts.BuildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.opts.BuildTags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Stale generated files may no longer type-check against their sources;
	// they are about to be rewritten, so their errors do not count. Other
	// type errors are usually calls into output that does not exist yet:
	// declarations are still recorded, so extraction goes ahead.
	var (
		errs  []error
		typed []packages.Error
	)

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			switch {
			case a.inGeneratedFile(e):
				a.logger.Debug("ignoring error in generated file", "package", pkg.PkgPath, "error", e.Msg, "pos", e.Pos)
			case e.Kind == packages.TypeError:
				typed = append(typed, e)
			default:
				errs = append(errs, e)
			}
		}

		if len(pkg.Errors) == 0 && (pkg.Types == nil || pkg.TypesInfo == nil) {
			errs = append(errs, fmt.Errorf("%s: no type information", pkg.PkgPath))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var out []EnumDecl
	for _, pkg := range pkgs {
		if pkg.Types == nil || pkg.TypesInfo == nil {
			continue
		}

		decls := ExtractPackage(pkg.Fset, pkg.Syntax, pkg.Types, pkg.TypesInfo)
		a.logger.Debug("analyzed package", "package", pkg.PkgPath, "enums", len(decls))

		out = append(out, decls...)
	}

	if len(typed) > 0 {
		return out, &TypeCheckError{Errors: typed}
	}

	return out, nil
}

func (a *Analyzer) inGeneratedFile(e packages.Error) bool {
	suffix := a.opts.Suffix
	if suffix == "" {
		return false
	}

	// e.Pos is "file:line:col".
	file := e.Pos
	for range 2 {
		if i := strings.LastIndexByte(file, ':'); i >= 0 {
			file = file[:i]
		}
	}

	return strings.HasSuffix(file, suffix)
}
