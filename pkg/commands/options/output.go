package options

import (
	"github.com/spf13/cobra"
)

// FormatOptions selects a document encoding.
type FormatOptions struct {
	Format string
}

func AddFormatArg(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", "json",
		"Output format. One of 'json' or 'yaml'.")
}
