package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/study/pkg/tui/components/calendar"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer   FooterTheme
	Panel    PanelTheme
	List     ListTheme
	Modal    ModalTheme
	Calendar calendar.Options
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
}

// ListTheme styles rows inside the deadline and subject panels.
type ListTheme struct {
	Item     lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Subject  lipgloss.Style
	Empty    lipgloss.Style
}

// ModalTheme styles centered prompts.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		},
		Panel: PanelTheme{
			Frame:        frame,
			FocusedFrame: frame.BorderForeground(lipgloss.Color("212")),
			Title:        lipgloss.NewStyle().Bold(true),
		},
		List: ListTheme{
			Item:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true),
			Subject:  lipgloss.NewStyle().Bold(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Calendar: calendar.DefaultOptions(),
	}
}
