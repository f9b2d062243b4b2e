package ui

import (
	"context"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizmokh/jam/internal/config"
	"github.com/faizmokh/jam/internal/files"
	"github.com/faizmokh/jam/internal/ledger"
	"github.com/faizmokh/jam/internal/timesheet"
)

func newTestModel(t *testing.T, writer *timesheet.Writer) (Model, *ledger.Ledger) {
	t.Helper()
	l := ledger.New(
		ledger.WithSessionID("feedbeef"),
		ledger.WithClock(func() time.Time {
			return time.Date(2025, time.November, 2, 9, 5, 0, 0, time.Local)
		}),
	)
	m := NewModel(context.Background(), Deps{
		Ledger: l,
		Writer: writer,
		Styles: NewStyles(config.Default().Colors),
	})
	return m, l
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msgs through Update. Commands are not run: the only ones the
// widget returns besides the export are cursor blinks.
func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, runes(string(r)))
	}
	return msgs
}

func TestModelAddAndRecordLogout(t *testing.T) {
	m, l := newTestModel(t, nil)

	m = press(t, m, runes("a"))
	require.Equal(t, 2, l.Len())
	assert.Equal(t, 1, m.selected)

	m = press(t, m, runes("k"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeLogout, m.mode)
	assert.Equal(t, 0, m.editingIndex)

	m = press(t, m, typeText("17:05")...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeNormal, m.mode)
	entry, err := l.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, "8 hours and 0 minutes", entry.TotalTime())
	assert.Equal(t, "Row 1: 8 hours and 0 minutes.", m.statusLine)
	assert.Contains(t, m.View(), "Total: 8 hours and 0 minutes")
}

func TestModelRejectsBadLogoutAndStaysInPrompt(t *testing.T) {
	m, l := newTestModel(t, nil)

	m = press(t, m, runes("o"))
	m = press(t, m, typeText("08:00")...)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeLogout, m.mode)
	assert.Contains(t, m.errorLine, "logout is earlier than login")
	entry, err := l.Entry(0)
	require.NoError(t, err)
	assert.True(t, entry.IsOpen())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, "Cancelled.", m.statusLine)
}

func TestModelRemoveNeedsConfirmationAndKeepsTotal(t *testing.T) {
	m, l := newTestModel(t, nil)
	_, err := l.RecordLogoutAndRecompute(0, "10:05")
	require.NoError(t, err)

	m = press(t, m, runes("d"), runes("n"))
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, "Remove cancelled.", m.statusLine)

	m = press(t, m, runes("d"), runes("y"))
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, ledger.Duration{Hours: 1}, l.Total())
	assert.Contains(t, m.View(), "(no rows, press a to add one)")

	m = press(t, m, runes("r"))
	assert.True(t, l.Total().IsZero())
	assert.Equal(t, "Total recomputed: 0 hours and 0 minutes.", m.statusLine)
}

func TestModelLogoutOnEmptyLedgerShowsError(t *testing.T) {
	m, l := newTestModel(t, nil)
	_, err := l.RemoveEntry(0)
	require.NoError(t, err)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeNormal, m.mode)
	assert.Contains(t, m.errorLine, ledger.ErrIndexOutOfRange.Error())
}

func TestModelExportWritesTimesheet(t *testing.T) {
	mgr, err := files.NewManager(t.TempDir())
	require.NoError(t, err)
	m, l := newTestModel(t, timesheet.NewWriter(mgr))
	_, err = l.RecordLogoutAndRecompute(0, "12:50")
	require.NoError(t, err)

	updated, cmd := m.Update(runes("w"))
	require.NotNil(t, cmd)
	m = press(t, updated.(Model), cmd())

	path := mgr.SheetPath(l.Started())
	assert.Equal(t, "Wrote "+path, m.statusLine)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## 2025-11-02 session feedbeef")
	assert.Contains(t, string(data), "- [09:05 - 12:50] 3 hours and 45 minutes")
}

func TestModelExportWithoutWriter(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = press(t, m, runes("w"))
	assert.Equal(t, "Timesheet export is not configured.", m.errorLine)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
