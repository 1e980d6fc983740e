package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/study/pkg/tui/components/calendar"
)

const sideWidth = 40

func (m *Model) View() string {
	if m.mode == modeHelp && m.help != nil {
		return m.help.View()
	}

	cal := m.panel("Calendar", m.focus == focusCalendar, calendar.Render(m.snap.Month, 0, m.theme.Calendar))
	side := lipgloss.JoinVertical(lipgloss.Left,
		m.panel("Deadlines", m.focus == focusDeadlines, m.deadlinesView()),
		m.panel("Subjects", m.focus == focusSubjects, m.subjectsView()),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, cal, side)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footerView())
}

func (m *Model) panel(title string, focused bool, body string) string {
	frame := m.theme.Panel.Frame
	if focused {
		frame = m.theme.Panel.FocusedFrame
	}
	return frame.Render(m.theme.Panel.Title.Render(title) + "\n" + body)
}

func (m *Model) deadlinesView() string {
	lt := m.theme.List
	if len(m.snap.Deadlines) == 0 {
		return lt.Empty.Width(sideWidth).Render("no deadlines")
	}
	lines := make([]string, 0, len(m.snap.Deadlines))
	for i, d := range m.snap.Deadlines {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color)).Render("●")
		style, cursor := lt.Item, "  "
		if m.focus == focusDeadlines && i == m.deadlineSel {
			style, cursor = lt.Selected, "› "
		}
		lines = append(lines, cursor+swatch+" "+style.Render(d.String()))
	}
	return lipgloss.NewStyle().Width(sideWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) subjectsView() string {
	lt := m.theme.List
	if len(m.rows) == 0 {
		return lt.Empty.Width(sideWidth).Render("no subjects")
	}
	lines := make([]string, 0, len(m.rows))
	for i, r := range m.rows {
		cursor := "  "
		if m.focus == focusSubjects && i == m.rowSel {
			cursor = "› "
		}
		s := m.snap.Subjects[r.subject]
		if r.task < 0 {
			text := lt.Subject.Render(s.Name) + fmt.Sprintf(" %d/%d", s.Completed(), len(s.Tasks))
			lines = append(lines, cursor+text)
			continue
		}
		t := s.Tasks[r.task]
		box, style := "[ ]", lt.Item
		if t.Completed {
			box, style = "[x]", lt.Done
		}
		if cursor != "  " {
			style = style.Inherit(lt.Selected)
		}
		lines = append(lines, cursor+"  "+box+" "+style.Render(t.Text))
	}
	return lipgloss.NewStyle().Width(sideWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) footerView() string {
	ft := m.theme.Footer
	var lines []string
	if m.mode == modeInput {
		lines = append(lines, ft.Status.Render(m.status), m.input.View())
	} else if m.status != "" {
		if m.statusErr {
			lines = append(lines, ft.Error.Render(m.status))
		} else {
			lines = append(lines, ft.Status.Render(m.status))
		}
	}
	lines = append(lines, ft.Help.Render("tab focus · ←/→ month · a add · A subject · space toggle · d delete · c color · ? help · q quit"))
	return strings.Join(lines, "\n")
}
