package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/study/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
study ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			i := ui.UI{State: s.State, Watcher: s.Watcher}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
