package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/study/pkg/calendar"
)

// MonthOptions selects which months a calendar shows.
type MonthOptions struct {
	Month  string
	Months int
	Detail bool
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Month to show, example: --month=2026-10 or --month="October 2026".`)
	cmd.Flags().IntVarP(&o.Months, "count", "n", 1,
		"Number of consecutive months to show.")
	cmd.Flags().BoolVarP(&o.Detail, "detail", "d", false,
		"List the open deadlines of every marked day.")
}

// Cursor parses Month. nil means the current month.
func (o *MonthOptions) Cursor() (*calendar.Cursor, error) {
	s := strings.TrimSpace(o.Month)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01", "2006-1", "January 2006", "Jan 2006"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			c := calendar.CursorAt(t)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("invalid month %q, want YYYY-MM or \"January 2006\"", s)
}
