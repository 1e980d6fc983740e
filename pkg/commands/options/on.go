package options

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/study/pkg/dateutil"
	"tableflip.dev/study/pkg/errdefs"
)

const (
	layoutISOShort = "1/2"
)

// DueOptions picks a deadline date either absolutely or relative to today.
type DueOptions struct {
	OnString string
	InString string
}

func AddDueArgs(cmd *cobra.Command, o *DueOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Due date, example: --on="2026-02-28" or --on="2/28".`)
	cmd.Flags().StringVar(&o.InString, "in", "",
		`Due relative to today: today, tomorrow, week or month.`)
}

// Resolve returns either an offset or an ISO date. An empty date with no
// offset is passed through so the store reports the missing field.
func (o *DueOptions) Resolve(now time.Time) (dateutil.Offset, string, error) {
	on := strings.TrimSpace(o.OnString)
	in := strings.TrimSpace(o.InString)
	if on != "" && in != "" {
		return "", "", errors.New("use only one of --on and --in")
	}
	if in != "" {
		off, err := dateutil.ParseOffset(in)
		return off, "", err
	}
	if on == "" || dateutil.Valid(on) {
		return "", on, nil
	}
	t, err := time.ParseInLocation(layoutISOShort, on, time.Local)
	if err != nil {
		// Leave it to the store to reject.
		return "", on, nil
	}
	today := dateutil.Day(now)
	year := now.Year()
	// A month/day already behind us means next year.
	if t.Month() < today.Month() || (t.Month() == today.Month() && t.Day() < today.Day()) {
		year++
	}
	due := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	if due.Month() != t.Month() {
		return "", "", errdefs.Validation("date", fmt.Sprintf("%s is not a day in %d", on, year))
	}
	return "", dateutil.Format(due), nil
}
