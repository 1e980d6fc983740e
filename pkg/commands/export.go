package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study/pkg/commands/options"
	"tableflip.dev/study/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all deadlines, subjects and completed days as one document",
		Example: `
study export > backup.json
study export -o yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			e := export.Export{State: s.State, Format: fo.Format, Out: cmd.OutOrStdout()}
			return e.Do(context.Background())
		},
	}

	options.AddFormatArg(cmd, fo)
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}
