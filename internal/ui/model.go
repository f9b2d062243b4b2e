package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/jam/internal/ledger"
	"github.com/faizmokh/jam/internal/timesheet"
)

// Deps are the collaborators the widget needs for one session.
type Deps struct {
	Ledger *ledger.Ledger
	Writer *timesheet.Writer
	Logger *slog.Logger
	Styles Styles
}

// Model is the Bubble Tea widget over a single session ledger.
type Model struct {
	ctx    context.Context
	ledger *ledger.Ledger
	writer *timesheet.Writer
	log    *slog.Logger

	keys   keyMap
	help   help.Model
	input  textinput.Model
	styles Styles

	selected     int
	mode         mode
	editingIndex int

	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeLogout
	modeConfirmDelete
)

type exportResultMsg struct {
	path string
	err  error
}

// NewModel seeds the widget with an already initialized ledger.
func NewModel(ctx context.Context, deps Deps) Model {
	input := textinput.New()
	input.Placeholder = "HH:MM"
	input.CharLimit = 5
	input.Width = 8

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return Model{
		ctx:          ctx,
		ledger:       deps.Ledger,
		writer:       deps.Writer,
		log:          logger,
		keys:         defaultKeys(),
		help:         help.New(),
		input:        input,
		styles:       deps.Styles,
		mode:         modeNormal,
		editingIndex: -1,
		statusLine:   fmt.Sprintf("Session started at %s.", deps.Ledger.Captured()),
	}
}

// Init has no startup work; the ledger is already initialized.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes key presses and async results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeLogout:
			return m.handleLogoutKey(msg)
		case modeConfirmDelete:
			return m.handleConfirmKey(msg)
		default:
			return m.handleKey(msg)
		}
	case exportResultMsg:
		return m.handleExportResult(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Down):
		if m.selected < m.ledger.Len()-1 {
			m.selected++
			m.setStatus(fmt.Sprintf("Selected row %d of %d", m.selected+1, m.ledger.Len()))
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.setStatus(fmt.Sprintf("Selected row %d of %d", m.selected+1, m.ledger.Len()))
		}
	case key.Matches(msg, m.keys.Add):
		entry := m.ledger.AddEntry()
		m.selected = m.ledger.Len() - 1
		m.log.Debug("entry added", "index", m.selected, "login", entry.LoginString())
		m.setStatus(fmt.Sprintf("Added row %d logged in at %s.", m.selected+1, entry.LoginString()))
	case key.Matches(msg, m.keys.Logout):
		return m.beginLogout()
	case key.Matches(msg, m.keys.Delete):
		if m.ledger.Len() == 0 {
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.editingIndex = m.selected
		m.setStatus("")
	case key.Matches(msg, m.keys.Recompute):
		total := m.ledger.Recompute()
		m.setStatus(fmt.Sprintf("Total recomputed: %s.", total))
	case key.Matches(msg, m.keys.Export):
		return m.export()
	}
	return m, nil
}

func (m Model) beginLogout() (tea.Model, tea.Cmd) {
	entry, err := m.ledger.Entry(m.selected)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.mode = modeLogout
	m.editingIndex = m.selected
	m.input.SetValue(entry.LogoutString())
	m.input.CursorEnd()
	m.setStatus("")
	return m, m.input.Focus()
}

func (m Model) handleLogoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		return m.cancel("Cancelled.")
	case tea.KeyEnter:
		return m.submitLogout()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitLogout() (tea.Model, tea.Cmd) {
	index := m.editingIndex
	value := strings.TrimSpace(m.input.Value())

	entry, err := m.ledger.RecordLogoutAndRecompute(index, value)
	if err != nil {
		m.log.Warn("logout rejected", "index", index, "value", value, "err", err)
		m.setError(err)
		return m, nil
	}

	m.log.Debug("logout recorded", "index", index, "logout", entry.LogoutString(), "total", m.ledger.Total().String())
	m.input.Blur()
	m.input.SetValue("")
	m.mode = modeNormal
	m.editingIndex = -1
	if entry.IsOpen() {
		m.setStatus(fmt.Sprintf("Reopened row %d.", index+1))
	} else {
		m.setStatus(fmt.Sprintf("Row %d: %s.", index+1, entry.TotalTime()))
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDelete()
	case "n", "N", "esc":
		return m.cancel("Remove cancelled.")
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	index := m.editingIndex
	m.mode = modeNormal
	m.editingIndex = -1

	if _, err := m.ledger.RemoveEntry(index); err != nil {
		m.log.Warn("remove rejected", "index", index, "err", err)
		m.setError(err)
		return m, nil
	}
	m.log.Debug("entry removed", "index", index)

	if m.selected >= m.ledger.Len() && m.selected > 0 {
		m.selected = m.ledger.Len() - 1
	}
	m.setStatus(fmt.Sprintf("Removed row %d. Press r to recompute the total.", index+1))
	return m, nil
}

func (m Model) cancel(message string) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.editingIndex = -1
	m.input.Blur()
	m.input.SetValue("")
	m.setStatus(message)
	return m, nil
}

func (m Model) export() (tea.Model, tea.Cmd) {
	if m.writer == nil {
		m.errorLine = "Timesheet export is not configured."
		return m, nil
	}
	session := timesheet.FromLedger(m.ledger)
	writer := m.writer
	ctx := m.ctx
	m.setStatus("Writing timesheet...")
	return m, func() tea.Msg {
		path, err := writer.Write(ctx, session)
		return exportResultMsg{path: path, err: err}
	}
}

func (m Model) handleExportResult(msg exportResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("timesheet export failed", "err", msg.err)
		m.errorLine = fmt.Sprintf("Export failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.log.Info("timesheet exported", "path", msg.path, "session", m.ledger.SessionID())
	m.setStatus(fmt.Sprintf("Wrote %s", msg.path))
	return m, nil
}

func (m *Model) setStatus(message string) {
	m.statusLine = message
	m.errorLine = ""
}

func (m *Model) setError(err error) {
	m.errorLine = err.Error()
	m.statusLine = ""
}

// View renders the ledger table, the running total and the prompts.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("jam · session started %s", m.ledger.Captured())))
	b.WriteString("\n\n")

	entries := m.ledger.Entries()
	if len(entries) == 0 {
		b.WriteString(m.styles.Open.Render("(no rows, press a to add one)"))
		b.WriteByte('\n')
	} else {
		b.WriteString(m.styles.Header.Render(fmt.Sprintf("    %-3s %-6s %-6s %s", "#", "Login", "Logout", "Duration")))
		b.WriteByte('\n')
		for i, entry := range entries {
			b.WriteString(m.renderRow(i, entry))
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(m.styles.Total.Render("Total: " + m.ledger.Total().String()))
	b.WriteByte('\n')

	switch m.mode {
	case modeLogout:
		fmt.Fprintf(&b, "\nLogout for row %d (HH:MM, empty to reopen; Enter to save, Esc to cancel):\n", m.editingIndex+1)
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	case modeConfirmDelete:
		fmt.Fprintf(&b, "\nRemove row %d? (y/n)\n", m.editingIndex+1)
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.statusLine))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) renderRow(i int, entry ledger.Entry) string {
	cursor := "  "
	if i == m.selected {
		cursor = m.styles.Cursor.Render("> ")
	}

	logout := entry.LogoutString()
	duration := entry.TotalTime()
	if entry.IsOpen() {
		logout = "--:--"
		duration = m.styles.Open.Render("open")
	}

	line := fmt.Sprintf("%-3d %-6s %-6s ", i+1, entry.LoginString(), logout)
	if i == m.selected {
		line = m.styles.Selected.Render(line)
	}
	return cursor + "  " + line + duration
}
