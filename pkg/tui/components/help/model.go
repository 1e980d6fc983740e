// Package help renders the key reference overlay.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
)

//go:embed help.md
var keysMarkdown string

const (
	minWidth  = 32
	minHeight = 8
)

// Model is a scrollable, framed view of the key reference.
type Model struct {
	vp     viewport.Model
	frame  lipgloss.Style
	width  int
	height int
	text   string
}

// New returns a help overlay of at least minWidth by minHeight.
func New(width, height int) *Model {
	m := &Model{
		vp:    viewport.New(),
		frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")),
	}
	m.vp.MouseWheelEnabled = true
	m.SetSize(width, height)
	return m
}

// Update scrolls the reference.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	return m.frame.Width(m.width).Height(m.height).Render(m.vp.View())
}

// Content is the visible part of the reference with styling removed.
func (m *Model) Content() string {
	return plain(m.vp.View())
}

// SetSize resizes the overlay and rewraps the markdown for the new width.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, minWidth), max(height, minHeight)
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height

	inner := width - m.frame.GetHorizontalFrameSize()
	m.vp.SetWidth(inner)
	m.vp.SetHeight(height - m.frame.GetVerticalFrameSize())
	m.text = render(inner)
	m.vp.SetContent(m.text)
	m.vp.GotoTop()
}

func render(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "help unavailable: " + err.Error()
	}
	out, err := r.Render(keysMarkdown)
	if err != nil {
		return "help unavailable: " + err.Error()
	}
	return strings.Trim(out, "\n")
}

func plain(s string) string {
	var b strings.Builder
	inSeq := false
	for _, c := range s {
		switch {
		case c == ansi.Marker:
			inSeq = true
		case inSeq:
			inSeq = !ansi.IsTerminator(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
