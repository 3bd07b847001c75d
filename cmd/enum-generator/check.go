package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"enum-generator/internal/runner"
)

func checkCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Validate directives without writing files",
		Long: `Parse, validate, resolve and render every annotated type, printing
diagnostics. Nothing is written. The exit status is 1 if any type failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts, args)
			if err != nil {
				return err
			}

			report, err := runner.New(*cfg, runner.WithLogger(logger)).Run(cmd.Context(), runner.ModeCheck)
			if err != nil {
				return err
			}

			if err := printReport(cmd.ErrOrStderr(), logger, report); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), summarize(report))

			return nil
		},
	}

	addRunFlags(cmd)

	return cmd
}
