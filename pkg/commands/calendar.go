package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/study/pkg/commands/options"
	"tableflip.dev/study/pkg/runner/show"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Print the month calendar with completion and deadline marks",
		Example: `
study calendar
study calendar --month 2026-11 --detail
study calendar -n 3
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			month, err := mo.Cursor()
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			c := show.Calendar{
				State:  s.State,
				Month:  month,
				Months: mo.Months,
				Detail: mo.Detail,
				JSON:   output.JSON,
				Out:    cmd.OutOrStdout(),
			}
			return output.HandleError(c.Do(context.Background()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
