// Package runner orchestrates one generation run: analyze, parse, resolve,
// generate and write, for every annotated enumeration.
//
// Each enumeration is self-contained. It produces either a complete file
// or exactly one diagnostic, and a failure never stops the others.
package runner

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"enum-generator/internal/analyze"
	"enum-generator/internal/config"
	"enum-generator/internal/diagnostic"
	"enum-generator/internal/gen"
	"enum-generator/internal/match"
	"enum-generator/internal/plan"
)

// Diagnostic codes reported by the runner itself.
const (
	CodeTypeError       = "type_error"
	CodeTypeNotFound    = "type_not_found"
	CodeOutputCollision = "output_collision"
)

// Mode selects how far the pipeline runs.
type Mode int

const (
	// ModeGenerate renders and writes files (unless DryRun is set).
	ModeGenerate Mode = iota
	// ModeCheck renders files but never writes them.
	ModeCheck
	// ModeTable stops after resolution.
	ModeTable
)

// String returns the command name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeGenerate:
		return "gen"
	case ModeCheck:
		return "check"
	case ModeTable:
		return "table"
	default:
		return "unknown"
	}
}

// Result is the outcome for one enumeration.
type Result struct {
	Decl *analyze.EnumDecl
	Plan *plan.EnumPlan
	File *gen.GeneratedFile
	// Written is set when the file content changed on disk.
	Written bool
	// Diagnostic is set when the enumeration failed.
	Diagnostic *diagnostic.Diagnostic
}

// OK reports whether the enumeration succeeded.
func (r *Result) OK() bool {
	return r.Diagnostic == nil
}

// Report is the outcome of a run. Results follow declaration order.
type Report struct {
	Results     []Result
	Diagnostics diagnostic.Diagnostics
}

// Plans returns the plans of successful enumerations.
func (r *Report) Plans() []*plan.EnumPlan {
	var out []*plan.EnumPlan
	for _, res := range r.Results {
		if res.OK() && res.Plan != nil {
			out = append(out, res.Plan)
		}
	}

	return out
}

// Loader finds annotated enumerations.
type Loader interface {
	LoadPackages(ctx context.Context, patterns ...string) ([]analyze.EnumDecl, error)
}

// Runner executes generation runs.
type Runner struct {
	cfg       config.Config
	loader    Loader
	generator *gen.Generator
	logger    *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLoader replaces the package loader.
func WithLoader(l Loader) Option {
	return func(r *Runner) {
		r.loader = l
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// New creates a Runner for cfg.
func New(cfg config.Config, opts ...Option) *Runner {
	r := &Runner{cfg: cfg, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	if r.loader == nil {
		r.loader = analyze.NewAnalyzer(analyze.Options{
			BuildTags: cfg.BuildTags,
			Suffix:    cfg.Suffix,
			Logger:    r.logger,
		})
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.Suffix = cfg.Suffix
	r.generator = gen.NewGenerator(genCfg)

	return r
}

// Run executes the pipeline in mode. Errors returned are fatal to the whole
// run (package loading, cancellation, writing); per-enumeration failures are
// reported as diagnostics.
func (r *Runner) Run(ctx context.Context, mode Mode) (*Report, error) {
	report := &Report{}

	decls, err := r.loader.LoadPackages(ctx, r.cfg.Packages...)

	var typeErrs *analyze.TypeCheckError
	switch {
	case errors.As(err, &typeErrs):
		for _, e := range typeErrs.Errors {
			report.Diagnostics.AddWarning(CodeTypeError, e.Msg, "", analyze.ErrorPosition(e))
		}

		r.logger.Debug("continuing past type errors", "count", len(typeErrs.Errors))
	case err != nil:
		return nil, err
	}

	decls = r.filter(decls, &report.Diagnostics)

	for _, d := range decls {
		for _, w := range d.Warnings {
			report.Diagnostics.AddWarning(w.Code, w.Message, d.Name, w.Pos)
		}
	}

	r.logger.Debug("starting run", "mode", mode.String(), "enums", len(decls))

	results := make([]Result, len(decls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for i := range decls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = r.process(&decls[i], mode)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.checkCollisions(results)

	for i := range results {
		res := &results[i]
		if !res.OK() {
			report.Diagnostics.Add(*res.Diagnostic)
			r.logger.Debug("enumeration failed", "enum", res.Decl.Name, "code", res.Diagnostic.Code)

			continue
		}

		if mode == ModeGenerate && !r.cfg.DryRun && res.File != nil {
			written, err := gen.WriteFile(res.File)
			if err != nil {
				return report, err
			}

			res.Written = written
			if written {
				r.logger.Info("generated", "enum", res.Decl.Name, "file", res.File.Path())
			} else {
				r.logger.Debug("up to date", "enum", res.Decl.Name, "file", res.File.Path())
			}
		}
	}

	report.Results = results

	return report, nil
}

// process runs one enumeration through the pipeline. It never fails:
// errors become the result's diagnostic.
func (r *Runner) process(decl *analyze.EnumDecl, mode Mode) Result {
	res := Result{Decl: decl}

	fail := func(err error) Result {
		d := diagnostic.FromError(decl.Name, decl.Pos, err)
		res.Diagnostic = &d

		return res
	}

	p, err := plan.Build(decl, plan.Config{Realization: r.cfg.RealizationValue(), Logger: r.logger})
	if err != nil {
		return fail(err)
	}

	res.Plan = p

	if mode == ModeTable {
		return res
	}

	file, err := r.generator.Generate(p)
	if err != nil {
		return fail(err)
	}

	res.File = file

	return res
}

// checkCollisions fails every enumeration whose output path was already
// claimed by an earlier one.
func (r *Runner) checkCollisions(results []Result) {
	owners := make(map[string]string)

	for i := range results {
		res := &results[i]
		if !res.OK() || res.File == nil {
			continue
		}

		path := res.File.Path()
		if owner, ok := owners[path]; ok {
			d := diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     CodeOutputCollision,
				Message:  fmt.Sprintf("output file %s is already generated for %s", res.File.Filename, owner),
				Enum:     res.Decl.Name,
				Pos:      res.Decl.Pos,
			}
			res.Diagnostic = &d
			res.File = nil

			continue
		}

		owners[path] = res.Decl.Name
	}
}

// filter keeps the requested types. Names match either the bare type name
// or the package-qualified form.
func (r *Runner) filter(decls []analyze.EnumDecl, diags *diagnostic.Diagnostics) []analyze.EnumDecl {
	if len(r.cfg.Types) == 0 {
		return decls
	}

	matched := make(map[string]bool, len(r.cfg.Types))

	names := make([]string, 0, len(decls))
	for _, d := range decls {
		names = append(names, d.Name)
	}

	out := slices.DeleteFunc(decls, func(d analyze.EnumDecl) bool {
		for _, want := range r.cfg.Types {
			if want == d.Name || want == d.ID().String() {
				matched[want] = true
				return false
			}
		}

		return true
	})

	for _, want := range r.cfg.Types {
		if !matched[want] {
			diags.AddWarning(CodeTypeNotFound, fmt.Sprintf("no annotated type %q in %v%s", want, r.cfg.Packages, match.Hint(want, names)), "", token.Position{})
		}
	}

	return out
}

func (r *Runner) workers() int {
	if r.cfg.Workers > 0 {
		return r.cfg.Workers
	}

	return runtime.GOMAXPROCS(0)
}
