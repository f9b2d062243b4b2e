// Package timesheet exports finished sessions as Markdown and reads them
// back for reporting. Sessions are never restored into a live ledger.
package timesheet

import (
	"time"

	"github.com/faizmokh/jam/internal/ledger"
)

// Row is one exported login/logout line.
type Row struct {
	Login     string
	Logout    string
	TotalTime string
}

// Open reports whether the row had no logout when exported.
func (r Row) Open() bool { return r.Logout == "" }

// Session groups the rows of one ledger beneath a dated heading.
type Session struct {
	Date time.Time
	ID   string
	Rows []Row
	// Total is the running total as the ledger showed it at export time.
	Total string
}

// Sum re-adds the row totals rather than trusting the recorded Total.
func (s Session) Sum() (ledger.Duration, error) {
	totals := make([]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		totals = append(totals, row.TotalTime)
	}
	return ledger.SumStrings(totals)
}

const shortIDLen = 8

// FromLedger snapshots l for export.
func FromLedger(l *ledger.Ledger) Session {
	started := l.Started()
	id := l.SessionID()
	if len(id) > shortIDLen {
		id = id[:shortIDLen]
	}

	entries := l.Entries()
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			Login:     e.LoginString(),
			Logout:    e.LogoutString(),
			TotalTime: e.TotalTime(),
		})
	}

	return Session{
		Date:  time.Date(started.Year(), started.Month(), started.Day(), 0, 0, 0, 0, started.Location()),
		ID:    id,
		Rows:  rows,
		Total: l.Total().String(),
	}
}
