package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/study/pkg/commands/options"
	"tableflip.dev/study/pkg/runner/show"
	"tableflip.dev/study/pkg/runner/ui"
)

var (
	output = &base.OutputOptions{}
	logs   = &options.LogOptions{}
)

func New() *cobra.Command {
	output = &base.OutputOptions{}
	logs = &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "study",
		Short: base.Wrap80("Track study deadlines, subjects and daily task completion on the command line."),
		Long: base.Wrap80("Track study deadlines, subjects and daily task completion. " +
			"Run without a subcommand to open the interactive calendar when attached to a terminal, " +
			"or to print an overview otherwise."),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()

			if isatty.IsTerminal(os.Stdout.Fd()) {
				i := ui.UI{State: s.State, Watcher: s.Watcher}
				return i.Do(context.Background())
			}
			o := show.Overview{State: s.State, Out: cmd.OutOrStdout()}
			return o.Do(context.Background())
		},
	}
	options.AddLogArgs(cmd, logs)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addDeadline(topLevel)
	addSubject(topLevel)
	addTask(topLevel)
	addCalendar(topLevel)
	addReport(topLevel)
	addExport(topLevel)
	addPalette(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
