// Package printers renders tracker state for the command line.
package printers

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/study/pkg/dateutil"
	"tableflip.dev/study/pkg/deadline"
	"tableflip.dev/study/pkg/subject"
)

type PrettyPrint struct {
	Out       io.Writer
	ShowIndex bool

	plain   bool
	profile termenv.Profile
}

// New returns a printer for out, or for stdout when out is nil. Color is
// dropped when the destination is not a terminal.
func New(out io.Writer) *PrettyPrint {
	var f *os.File
	if out == nil {
		out, f = color.Output, os.Stdout
	} else {
		f, _ = out.(*os.File)
	}
	pp := &PrettyPrint{Out: out, ShowIndex: true, profile: termenv.ColorProfile()}
	if !isTerminal(f) {
		pp.Plain()
	}
	return pp
}

func isTerminal(f *os.File) bool {
	return f != nil && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Plain turns off every escape sequence.
func (pp *PrettyPrint) Plain() {
	pp.plain = true
	pp.profile = termenv.Ascii
}

func (pp *PrettyPrint) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if pp.plain {
		c.DisableColor()
	}
	return c
}

// swatch draws a colored dot for a hex color.
func (pp *PrettyPrint) swatch(hex string) string {
	return pp.profile.String("●").Foreground(pp.profile.Color(hex)).String()
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Out, "")
}

func (pp *PrettyPrint) Title(title string) {
	_, _ = pp.style(color.Bold, color.Underline).Fprintln(pp.Out, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	_, _ = pp.style(color.Bold, color.Underline).Fprint(pp.Out, title)
	c := pp.style(color.Faint)
	if count == 1 {
		_, _ = c.Fprintf(pp.Out, " - %d %s\n", count, noun)
		return
	}
	_, _ = c.Fprintf(pp.Out, " - %d %ss\n", count, noun)
}

func (pp *PrettyPrint) none() {
	_, _ = pp.style(color.Faint, color.Italic).Fprint(pp.Out, " none\n\n")
}

// Deadlines lists deadlines in store order. Deadlines already past are
// dimmed.
func (pp *PrettyPrint) Deadlines(items []deadline.Deadline, today time.Time) {
	pp.TitleWithCount("Deadlines", len(items), "deadline")
	if len(items) == 0 {
		pp.none()
		return
	}
	idx := pp.style(color.FgHiYellow, color.Faint)
	past := pp.style(color.Faint)
	plain := pp.style()
	for i, d := range items {
		if pp.ShowIndex {
			_, _ = idx.Fprintf(pp.Out, "%3d ", i)
		}
		_, _ = fmt.Fprintf(pp.Out, "%s ", pp.swatch(d.Color))
		line := plain
		if due := d.Due(); !due.IsZero() && due.Before(dateutil.Day(today)) {
			line = past
		}
		_, _ = line.Fprintln(pp.Out, d.String())
	}
	pp.NewLine()
}

// Subjects prints each subject with its tasks.
func (pp *PrettyPrint) Subjects(subjects []subject.Subject) {
	pp.TitleWithCount("Subjects", len(subjects), "subject")
	if len(subjects) == 0 {
		pp.none()
		return
	}
	bold := pp.style(color.Bold)
	done := pp.style(color.FgGreen)
	faint := pp.style(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for si, s := range subjects {
		tbl.AddRow(pp.index(si), bold.Sprint(s.Name), faint.Sprintf("%d/%d", s.Completed(), len(s.Tasks)))
		for ti, t := range s.Tasks {
			box := "[ ]"
			text := t.Text
			if t.Completed {
				box = done.Sprint("[x]")
				text = faint.Sprint(text)
			}
			tbl.AddRow(pp.index2(si, ti), "  "+box+" "+text, "")
		}
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.Out, tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) index(i int) string {
	if !pp.ShowIndex {
		return ""
	}
	return fmt.Sprintf("%d", i)
}

func (pp *PrettyPrint) index2(i, j int) string {
	if !pp.ShowIndex {
		return ""
	}
	return fmt.Sprintf("%d.%d", i, j)
}

// Palette prints the deadline colors with their indexes.
func (pp *PrettyPrint) Palette() {
	bold := pp.style(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Index"), bold.Sprint("Color"), bold.Sprint("Hex"))
	for i, hex := range deadline.Palette {
		tbl.AddRow(i, pp.swatch(hex), hex)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.Out, tbl)
}
