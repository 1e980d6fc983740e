package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study/pkg/runner/palette"
)

func addPalette(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the deadline colors and their indexes",
		Example: `
study palette
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := palette.Palette{Out: cmd.OutOrStdout()}
			return output.HandleError(p.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
