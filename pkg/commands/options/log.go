package options

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// LogOptions controls diagnostic logging to stderr.
type LogOptions struct {
	Verbose bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log load and save diagnostics to stderr.")
}

// Logger returns a debug level text logger when verbose, otherwise one
// that only reports warnings.
func (o *LogOptions) Logger() *slog.Logger {
	return o.LoggerTo(os.Stderr)
}

func (o *LogOptions) LoggerTo(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
