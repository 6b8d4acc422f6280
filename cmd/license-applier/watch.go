package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"license-applier/internal/runner"
)

func newWatchCmd(globals *globalFlags) *cobra.Command {
	flags := &runFlags{}

	var (
		action   string
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [paths or packages...]",
		Short: "Apply the action, then reapply it whenever files change",
		Long: `Apply the configured action once, then reapply it to each processed
file whenever that file is written or recreated.

Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, globals, flags, action, args)
			if err != nil {
				return err
			}
			defer func() { _ = s.logger.Sync() }()

			report, err := s.runner.Run(cmd.Context(), s.files)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printReport(out, report, globals.verbose)

			return s.runner.Watch(cmd.Context(), s.files, debounce, func(rep *runner.Report) {
				printReport(out, rep, globals.verbose)

				if !rep.Diagnostics.IsValid() {
					s.logger.Warn("some files could not be processed", zap.Int("errors", len(rep.Diagnostics.Errors)))
				}
			})
		},
	}

	addRunFlags(cmd, flags)
	cmd.Flags().StringVarP(&action, "action", "a", "", "action override: check, reformat, update, remove")
	cmd.Flags().DurationVar(&debounce, "debounce", runner.DefaultDebounce, "quiet period before reprocessing changed files")

	return cmd
}
