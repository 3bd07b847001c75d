package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"enum-generator/internal/config"
	"enum-generator/internal/runner"
)

const (
	Version = "0.1.0"
	appName = "enum-generator"
)

// errDiagnostics is returned when a run reported errors. They have already
// been printed.
var errDiagnostics = errors.New("generation failed")

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Generate name accessors, predicates and variant lists for Go enums",
		Long: `enum-generator reads //enum: directives on Go types and writes
<type>_enum.go files next to them.

Two shapes are supported:
- constant enumerations: a named integer or string type with typed constants
- union enumerations: a named interface implemented by same-package types

Directives on the type:
  //enum:name(base = "title case", extra(plural = "title case plural"))
  //enum:name(pluralizer(base, plural))
  //enum:predicates
  //enum:variants            (or variants(array), variants(chain))

Directives on a variant:
  //enum:name = "Override"
  //enum:name(plural = "Overrides")`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (default: ./enumgen.yaml if present)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(genCmd(opts))
	cmd.AddCommand(checkCmd(opts))
	cmd.AddCommand(tableCmd(opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// addRunFlags registers the flags shared by gen, check and table.
func addRunFlags(cmd *cobra.Command) {
	def := config.Default()

	cmd.Flags().StringSlice("types", nil, "Only process these types (name or import/path.Name)")
	cmd.Flags().String("realization", def.Realization, "Default variant enumerator layout (array, chain)")
	cmd.Flags().String("suffix", def.Suffix, "Generated file name suffix")
	cmd.Flags().Int("workers", def.Workers, "Concurrent enumerations (0 = GOMAXPROCS)")
	cmd.Flags().StringSlice("build-tags", nil, "Build tags used when loading packages")
}

// setup loads the configuration for cmd and installs the logger.
func setup(cmd *cobra.Command, opts *rootOptions, args []string) (*config.Config, *slog.Logger, error) {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(v, opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if len(args) > 0 {
		cfg.Packages = args
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return cfg, logger, nil
}

// dumper prints plans at debug level.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// printReport writes diagnostics to w and returns errDiagnostics when any
// error was reported.
func printReport(w io.Writer, logger *slog.Logger, report *runner.Report) error {
	for _, d := range report.Diagnostics.All() {
		fmt.Fprintln(w, d.String())
	}

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		for _, p := range report.Plans() {
			logger.Debug("resolved plan", "enum", p.Decl.Name, "table", dumper.Sdump(p.Table))
		}
	}

	if report.Diagnostics.HasErrors() {
		return errDiagnostics
	}

	return nil
}

// summarize returns a one-line count of results.
func summarize(report *runner.Report) string {
	var ok, written int
	for _, r := range report.Results {
		if r.OK() {
			ok++
		}

		if r.Written {
			written++
		}
	}

	return fmt.Sprintf("%d enumerations, %d ok, %d failed, %d files written",
		len(report.Results), ok, len(report.Results)-ok, written)
}
