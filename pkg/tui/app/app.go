// Package app is the Bubble Tea front end over an app.State.
package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	studyapp "tableflip.dev/study/pkg/app"
	"tableflip.dev/study/pkg/calendar"
	"tableflip.dev/study/pkg/dateutil"
	"tableflip.dev/study/pkg/deadline"
	"tableflip.dev/study/pkg/errdefs"
	"tableflip.dev/study/pkg/store"
	"tableflip.dev/study/pkg/tui/components/help"
	"tableflip.dev/study/pkg/tui/theme"
)

type focus int

const (
	focusCalendar focus = iota
	focusDeadlines
	focusSubjects
	focusCount
)

type mode int

const (
	modeNormal mode = iota
	modeInput
	modeHelp
)

type inputKind int

const (
	inputNone inputKind = iota
	inputDeadlineTopic
	inputDeadlineDate
	inputSubject
	inputTask
)

// row is one line of the subjects panel. task is -1 for a subject header.
type row struct {
	subject int
	task    int
}

// Model contains UI state
type Model struct {
	state   *studyapp.State
	watcher store.Watcher
	ctx     context.Context
	cancel  context.CancelFunc

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	snap  studyapp.Snapshot
	rows  []row
	focus focus
	mode  mode

	input        textinput.Model
	inputKind    inputKind
	pendingTopic string

	deadlineSel int
	rowSel      int

	help      *help.Model
	status    string
	statusErr bool

	termWidth  int
	termHeight int
	theme      theme.Theme
}

// New creates a UI model over state. watcher may be nil when the backend
// cannot report external writes.
func New(state *studyapp.State, watcher store.Watcher) *Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = "> "
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		state:   state,
		watcher: watcher,
		ctx:     ctx,
		cancel:  cancel,
		input:   ti,
		focus:   focusSubjects,
		theme:   theme.Default(),
	}
	m.refresh()
	return m
}

// Init starts watching for external changes.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.watcher)
}

// Run launches the interactive TUI program.
func Run(state *studyapp.State, watcher store.Watcher) error {
	m := New(state, watcher)
	defer m.cancel()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refresh re-reads the snapshot and keeps selections in range.
func (m *Model) refresh() {
	m.snap = m.state.Snapshot()
	m.rows = m.rows[:0]
	for si, s := range m.snap.Subjects {
		m.rows = append(m.rows, row{subject: si, task: -1})
		for ti := range s.Tasks {
			m.rows = append(m.rows, row{subject: si, task: ti})
		}
	}
	m.deadlineSel = clamp(m.deadlineSel, len(m.snap.Deadlines))
	m.rowSel = clamp(m.rowSel, len(m.rows))
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) fail(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// apply runs an action and refreshes on success.
func (m *Model) apply(err error, ok string) {
	if err != nil {
		m.fail(err)
		return
	}
	m.refresh()
	m.setStatus(ok)
}

func (m *Model) selectedRow() (row, bool) {
	if len(m.rows) == 0 {
		return row{}, false
	}
	return m.rows[m.rowSel], true
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, w store.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := w.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.help != nil {
			m.help.SetSize(m.termWidth-4, m.termHeight-2)
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.fail(msg.err)
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		if err := m.state.Reload(); err != nil {
			m.fail(err)
		} else {
			m.refresh()
		}
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.watcher))
		}
	case tea.KeyPressMsg:
		if cmd := m.handleKeyPress(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	switch m.mode {
	case modeInput:
		return m.handleInputKey(msg)
	case modeHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "?":
		m.mode = modeNormal
		return nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return cmd
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.stopWatch()
		m.cancel()
		return tea.Quit
	case "?":
		if m.help == nil {
			m.help = help.New(m.termWidth-4, m.termHeight-2)
		}
		m.mode = modeHelp
	case "tab":
		m.focus = (m.focus + 1) % focusCount
	case "shift+tab":
		m.focus = (m.focus + focusCount - 1) % focusCount
	case "left", "h":
		m.state.ChangeMonth(-1)
		m.refresh()
	case "right", "l":
		m.state.ChangeMonth(1)
		m.refresh()
	case "t":
		m.state.SetCursor(calendar.CursorAt(m.state.Today()))
		m.refresh()
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "a":
		if m.focus == focusSubjects {
			r, ok := m.selectedRow()
			if !ok {
				m.fail(errdefs.Index("subject", 0, 0))
				return nil
			}
			name := m.snap.Subjects[r.subject].Name
			return m.beginInput(inputTask, "New task for "+name, "")
		}
		return m.beginInput(inputDeadlineTopic, "New deadline topic", "")
	case "A":
		return m.beginInput(inputSubject, "New subject", "")
	case "d", "x", "delete":
		m.deleteSelected()
	case "c":
		m.cycleColor()
	case "space", " ", "enter":
		m.toggleSelected()
	}
	return nil
}

func (m *Model) moveSelection(delta int) {
	switch m.focus {
	case focusDeadlines:
		m.deadlineSel = clamp(m.deadlineSel+delta, len(m.snap.Deadlines))
	case focusSubjects:
		m.rowSel = clamp(m.rowSel+delta, len(m.rows))
	case focusCalendar:
		m.state.ChangeMonth(delta)
		m.refresh()
	}
}

func (m *Model) deleteSelected() {
	switch m.focus {
	case focusDeadlines:
		if len(m.snap.Deadlines) == 0 {
			return
		}
		d := m.snap.Deadlines[m.deadlineSel]
		m.apply(m.state.DeleteDeadline(m.deadlineSel), "Deleted "+d.Topic)
	case focusSubjects:
		r, ok := m.selectedRow()
		if !ok {
			return
		}
		if r.task < 0 {
			name := m.snap.Subjects[r.subject].Name
			m.apply(m.state.DeleteSubject(r.subject), "Deleted subject "+name)
			return
		}
		m.apply(m.state.DeleteTask(r.subject, r.task), "Deleted task")
	}
}

func (m *Model) cycleColor() {
	if m.focus != focusDeadlines || len(m.snap.Deadlines) == 0 {
		return
	}
	cur := deadline.NearestPalette(m.snap.Deadlines[m.deadlineSel].Color)
	next := (cur + 1) % len(deadline.Palette)
	m.apply(m.state.SetDeadlineColor(m.deadlineSel, strconv.Itoa(next)), "Color "+deadline.Palette[next])
}

func (m *Model) toggleSelected() {
	if m.focus != focusSubjects {
		return
	}
	r, ok := m.selectedRow()
	if !ok || r.task < 0 {
		return
	}
	done, err := m.state.ToggleTask(r.subject, r.task)
	if done {
		m.apply(err, "Task completed")
		return
	}
	m.apply(err, "Task reopened")
}

func (m *Model) beginInput(kind inputKind, prompt, placeholder string) tea.Cmd {
	m.mode = modeInput
	m.inputKind = kind
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.setStatus(prompt)
	return m.input.Focus()
}

func (m *Model) endInput() {
	m.mode = modeNormal
	m.inputKind = inputNone
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.submitInput(strings.TrimSpace(m.input.Value()))
	case "esc":
		m.pendingTopic = ""
		m.endInput()
		m.setStatus("")
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) submitInput(value string) tea.Cmd {
	kind := m.inputKind
	m.endInput()

	switch kind {
	case inputDeadlineTopic:
		m.pendingTopic = value
		offsets := make([]string, 0, 4)
		for _, o := range dateutil.Offsets() {
			offsets = append(offsets, string(o))
		}
		return m.beginInput(inputDeadlineDate, "Due date for "+value, "YYYY-MM-DD or "+strings.Join(offsets, "/"))
	case inputDeadlineDate:
		topic := m.pendingTopic
		m.pendingTopic = ""
		if off, err := dateutil.ParseOffset(value); err == nil {
			m.apply(m.state.AddQuickDeadline(topic, off), "Added "+topic)
			return nil
		}
		m.apply(m.state.AddDeadline(topic, value), "Added "+topic)
	case inputSubject:
		m.apply(m.state.AddSubject(value), "Added subject "+value)
		if !m.statusErr {
			m.focus = focusSubjects
		}
	case inputTask:
		r, ok := m.selectedRow()
		if !ok {
			m.fail(errdefs.Index("subject", 0, 0))
			return nil
		}
		m.apply(m.state.AddTask(r.subject, value), "Added task")
	}
	return nil
}
