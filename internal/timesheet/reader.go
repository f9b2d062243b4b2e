package timesheet

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/faizmokh/jam/internal/files"
)

// Reader loads exported sessions from the monthly timesheets.
type Reader struct {
	manager *files.Manager
}

// NewReader wires a reader onto the shared files.Manager.
func NewReader(manager *files.Manager) *Reader {
	return &Reader{manager: manager}
}

// Session returns the exported session with the given date and ID.
func (r *Reader) Session(ctx context.Context, date time.Time, id string) (Session, error) {
	sessions, err := r.SessionsBetween(ctx, date, date)
	if err != nil {
		return Session{}, err
	}
	for _, s := range sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return Session{}, ErrSessionNotFound
}

// SessionsBetween returns every session dated within [start, end], in file
// order. Months without a timesheet are skipped; no files are created.
func (r *Reader) SessionsBetween(ctx context.Context, start, end time.Time) ([]Session, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}
	start = startOfDay(start)
	end = startOfDay(end)
	if end.Before(start) {
		return nil, nil
	}

	var sessions []Session
	month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	for ; !month.After(end); month = month.AddDate(0, 1, 0) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !r.manager.SheetExists(month) {
			continue
		}
		found, err := r.readSheet(r.manager.SheetPath(month))
		if err != nil {
			return nil, err
		}
		for _, s := range found {
			day := startOfDay(s.Date)
			if !day.Before(start) && !day.After(end) {
				sessions = append(sessions, s)
			}
		}
	}
	return sessions, nil
}

func (r *Reader) readSheet(path string) ([]Session, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var sessions []Session
	parser := NewParser(file)
	for {
		session, err := parser.NextSession()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return sessions, nil
			}
			return nil, err
		}
		sessions = append(sessions, *session)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
