package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/study/pkg/commands/options"
	"tableflip.dev/study/pkg/runner/subject"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage the tasks of a subject",
		Example: `
study task add 0 read chapter 4
study task toggle 0.2
study task rm 0 2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskToggle(cmd)
	addTaskRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(parent *cobra.Command) {
	var (
		index int
		text  string
	)
	cmd := &cobra.Command{
		Use:   "add SUBJECT TEXT",
		Short: "Add a task to the subject at index SUBJECT",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a subject index")
			}
			i, err := options.ParseIndex("subject", args[0])
			if err != nil {
				return err
			}
			index = i
			text = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			a := subject.AddTask{State: s.State, Subject: index, Text: text, Out: cmd.OutOrStdout()}
			return output.HandleError(a.Do(context.Background()))
		},
	}
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addTaskToggle(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "toggle SUBJECT.TASK",
		Aliases: []string{"done", "check"},
		Short:   "Mark a task completed, or reopen it",
		Long: base.Wrap80("Toggle a task. Completing any task records today as a completed day; " +
			"reopening the last completed task clears it again."),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			si, ti, err := options.ParseTaskRef(args)
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			t := subject.Toggle{State: s.State, Subject: si, Task: ti, Out: cmd.OutOrStdout()}
			return output.HandleError(t.Do(context.Background()))
		},
	}
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addTaskRemove(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm SUBJECT.TASK",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			si, ti, err := options.ParseTaskRef(args)
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			r := subject.RemoveTask{State: s.State, Subject: si, Task: ti, Out: cmd.OutOrStdout()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
