package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/study/pkg/commands/options"
	"tableflip.dev/study/pkg/runner/subject"
)

func addSubject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "subject",
		Aliases: []string{"subjects"},
		Short:   "Manage subjects",
		Example: `
study subject add organic chemistry
study subject list
study subject rm 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSubjectAdd(cmd)
	addSubjectList(cmd)
	addSubjectRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addSubjectAdd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			a := subject.Add{State: s.State, Name: strings.Join(args, " "), Out: cmd.OutOrStdout()}
			return output.HandleError(a.Do(context.Background()))
		},
	}
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addSubjectList(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List subjects with their tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			l := subject.List{State: s.State, JSON: output.JSON, Out: cmd.OutOrStdout()}
			return output.HandleError(l.Do(context.Background()))
		},
	}
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addSubjectRemove(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm INDEX",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a subject and all of its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			index, err := options.ParseIndex("subject", args[0])
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			r := subject.Remove{State: s.State, Index: index, Out: cmd.OutOrStdout()}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	base.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
