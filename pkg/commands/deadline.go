package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/study/pkg/commands/options"
	"tableflip.dev/study/pkg/dateutil"
	"tableflip.dev/study/pkg/runner/deadline"
)

func addDeadline(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "deadline",
		Aliases: []string{"deadlines", "dl"},
		Short:   "Manage deadlines",
		Example: `
study deadline add --on 2026-11-02 physics midterm
study deadline add --in week essay draft
study deadline list
study deadline color 0 3
study deadline rm 0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDeadlineAdd(cmd)
	addDeadlineList(cmd)
	addDeadlineRemove(cmd)
	addDeadlineColor(cmd)

	topLevel.AddCommand(cmd)
}

func addDeadlineAdd(parent *cobra.Command) {
	do := &options.DueOptions{}
	var topic string

	cmd := &cobra.Command{
		Use:   "add TOPIC",
		Short: "Add a deadline",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			topic = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			offset, date, err := do.Resolve(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()

			a := deadline.Add{
				State:  s.State,
				Topic:  topic,
				Date:   date,
				Offset: offset,
				Out:    cmd.OutOrStdout(),
			}
			return output.HandleError(a.Do(context.Background()))
		},
	}

	options.AddDueArgs(cmd, do)
	_ = cmd.RegisterFlagCompletionFunc("in", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, o := range dateutil.Offsets() {
			names = append(names, string(o))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addDeadlineList(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List deadlines in date order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			l := deadline.List{State: s.State, JSON: output.JSON, Out: cmd.OutOrStdout()}
			return output.HandleError(l.Do(context.Background()))
		},
	}
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addDeadlineRemove(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm INDEX",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete the deadline at INDEX",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			index, err := options.ParseIndex("deadline", args[0])
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			r := deadline.Remove{State: s.State, Index: index, Out: cmd.OutOrStdout()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addDeadlineColor(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "color INDEX COLOR",
		Short: "Recolor a deadline with a hex color or a palette index",
		Example: `
study deadline color 0 '#ff8800'
study deadline color 0 4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a deadline index and a color")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			index, err := options.ParseIndex("deadline", args[0])
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			c := deadline.Color{State: s.State, Index: index, Color: args[1], Out: cmd.OutOrStdout()}
			return output.HandleError(c.Do(context.Background()))
		},
	}
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
