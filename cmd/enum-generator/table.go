package main

import (
	"github.com/spf13/cobra"

	"enum-generator/internal/plan"
	"enum-generator/internal/runner"
)

func tableCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table [packages...]",
		Short: "Print the resolved name tables as YAML",
		Long: `Resolve every annotated type and print, per enumeration, the declared
keys, pluralizers and the value of every key for every variant, with the
resolution step that produced it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts, args)
			if err != nil {
				return err
			}

			report, err := runner.New(*cfg, runner.WithLogger(logger)).Run(cmd.Context(), runner.ModeTable)
			if err != nil {
				return err
			}

			out, err := plan.ExportYAML(report.Plans()...)
			if err != nil {
				return err
			}

			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return err
			}

			return printReport(cmd.ErrOrStderr(), logger, report)
		},
	}

	addRunFlags(cmd)

	return cmd
}
