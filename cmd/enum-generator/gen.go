package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"enum-generator/internal/runner"
	"enum-generator/internal/watch"
)

func genCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Generate <type>_enum.go files",
		Long: `Generate accessors, predicates and variant enumerators for every
annotated type in the given packages (default: the configured packages).

Each enumeration is processed independently: one failing type is reported
and the others are still generated. The exit status is 1 if any failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts, args)
			if err != nil {
				return err
			}

			r := runner.New(*cfg, runner.WithLogger(logger))

			once := func(ctx context.Context) error {
				report, err := r.Run(ctx, runner.ModeGenerate)
				if err != nil {
					return err
				}

				logger.Info(summarize(report))

				return printReport(cmd.ErrOrStderr(), logger, report)
			}

			if !cfg.Watch {
				return once(cmd.Context())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// A failing first run still starts the watcher so the user can fix it.
			if err := once(ctx); err != nil && !errors.Is(err, errDiagnostics) {
				return err
			}

			root, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}

			w, err := watch.New(watch.Config{Root: root, Suffix: cfg.Suffix, Logger: logger})
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}

			return w.Run(ctx, func(ctx context.Context, changed []string) error {
				logger.Info("sources changed", "files", len(changed))

				if err := once(ctx); err != nil && !errors.Is(err, errDiagnostics) {
					return err
				}

				return nil
			})
		},
	}

	addRunFlags(cmd)
	cmd.Flags().Bool("dry-run", false, "Render files without writing them")
	cmd.Flags().BoolP("watch", "w", false, "Regenerate when Go sources change")

	return cmd
}
