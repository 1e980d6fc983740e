package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study/pkg/runner/report"
	"tableflip.dev/study/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	var last string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize completed and missed days",
		Long: `Report lists every day of a recent window with whether a task was completed,
the deadlines due on it, the completion rate and the current streak.

Examples:
  study report
  study report --last 3d
  study report --last 2w3d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			r := report.Report{State: s.State, Window: last, Out: cmd.OutOrStdout()}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow, "window of days to include (for example 3d, 1w)")
	topLevel.AddCommand(cmd)
}
