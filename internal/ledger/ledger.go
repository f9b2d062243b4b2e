// Package ledger holds the in-memory list of login/logout rows for one
// session and the arithmetic that turns them into durations and a total.
package ledger

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one login/logout row.
type Entry struct {
	Login  Clock
	Logout *Clock
	Total  *Duration
}

// IsOpen reports whether the row still waits for a logout.
func (e Entry) IsOpen() bool { return e.Logout == nil }

// LoginString renders the login as HH:MM.
func (e Entry) LoginString() string { return e.Login.String() }

// LogoutString renders the logout as HH:MM, or "" while the row is open.
func (e Entry) LogoutString() string {
	if e.Logout == nil {
		return ""
	}
	return e.Logout.String()
}

// TotalTime renders the row duration, or "" until it has been computed.
func (e Entry) TotalTime() string {
	if e.Total == nil {
		return ""
	}
	return e.Total.String()
}

func (e Entry) clone() Entry {
	out := Entry{Login: e.Login}
	if e.Logout != nil {
		logout := *e.Logout
		out.Logout = &logout
	}
	if e.Total != nil {
		total := *e.Total
		out.Total = &total
	}
	return out
}

// NowFunc supplies the current wall-clock time.
type NowFunc func() time.Time

// Ledger is the ordered set of rows for a single session. It is not safe for
// concurrent use; one presentation layer owns it for the life of the session.
type Ledger struct {
	id       string
	started  time.Time
	captured Clock
	entries  []Entry
	total    Duration
}

// Option customizes a Ledger at construction.
type Option func(*options)

type options struct {
	now  NowFunc
	seed bool
	id   string
}

// WithClock replaces time.Now as the clock source.
func WithClock(now NowFunc) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithSeed controls whether the ledger starts with one row logged in at the captured time.
func WithSeed(seed bool) Option {
	return func(o *options) { o.seed = seed }
}

// WithSessionID fixes the session identifier instead of generating one.
func WithSessionID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.id = id
		}
	}
}

// New initializes a session. The clock is sampled exactly once; that
// captured time is the login of the seeded row and of every row added later.
func New(opts ...Option) *Ledger {
	o := options{now: time.Now, seed: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	started := o.now()
	l := &Ledger{
		id:       o.id,
		started:  started,
		captured: ClockAt(started),
	}
	if o.seed {
		l.AddEntry()
	}
	return l
}

// SessionID identifies the session in exported timesheets.
func (l *Ledger) SessionID() string { return l.id }

// Started is the full timestamp sampled at initialization.
func (l *Ledger) Started() time.Time { return l.started }

// Captured is the login time handed to every new row.
func (l *Ledger) Captured() Clock { return l.captured }

// Len returns the number of rows.
func (l *Ledger) Len() int { return len(l.entries) }

// Total returns the running total as of the last recompute.
func (l *Ledger) Total() Duration { return l.total }

// Entries returns a copy of the rows in display order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.clone()
	}
	return out
}

// Entry returns a copy of the row at index.
func (l *Ledger) Entry(index int) (Entry, error) {
	if err := l.checkIndex(index); err != nil {
		return Entry{}, err
	}
	return l.entries[index].clone(), nil
}

// AddEntry appends an open row logged in at the captured time.
func (l *Ledger) AddEntry() Entry {
	entry := Entry{Login: l.captured}
	l.entries = append(l.entries, entry)
	return entry.clone()
}

// RecordLogoutAndRecompute sets the logout of the row at index, computes its
// duration and refreshes the running total. An empty or blank logout reopens
// the row.
// On error the ledger is left unchanged.
func (l *Ledger) RecordLogoutAndRecompute(index int, logout string) (Entry, error) {
	if err := l.checkIndex(index); err != nil {
		return Entry{}, err
	}

	entry := l.entries[index]
	logout = strings.TrimSpace(logout)
	if logout == "" {
		entry.Logout = nil
		entry.Total = nil
	} else {
		out, err := ParseClock(logout)
		if err != nil {
			return Entry{}, err
		}
		if out < entry.Login {
			return Entry{}, fmt.Errorf("%w: %s < %s", ErrLogoutBeforeLogin, out, entry.Login)
		}
		total := DurationBetween(entry.Login, out)
		entry.Logout = &out
		entry.Total = &total
	}

	l.entries[index] = entry
	l.total = SumDurations(l.entries)
	return entry.clone(), nil
}

// RemoveEntry deletes the row at index; later rows shift down by one.
// The running total is left as is until the next recompute.
func (l *Ledger) RemoveEntry(index int) (Entry, error) {
	if err := l.checkIndex(index); err != nil {
		return Entry{}, err
	}
	removed := l.entries[index]
	l.entries = append(l.entries[:index], l.entries[index+1:]...)
	return removed.clone(), nil
}

// Recompute refreshes the running total from the current rows.
func (l *Ledger) Recompute() Duration {
	l.total = SumDurations(l.entries)
	return l.total
}

func (l *Ledger) checkIndex(index int) error {
	if index < 0 || index >= len(l.entries) {
		return fmt.Errorf("%w: %d (ledger has %d entries)", ErrIndexOutOfRange, index, len(l.entries))
	}
	return nil
}

// SumDurations adds up the computed totals of entries. Open rows contribute
// nothing. Minutes past 60 carry into hours and the remainder is kept.
func SumDurations(entries []Entry) Duration {
	var sum Duration
	for _, e := range entries {
		if e.Total != nil {
			sum = sum.Add(*e.Total)
		}
	}
	return sum
}

// SumStrings parses rendered totals and adds them up. Empty strings are skipped.
// A sum too large to represent is reported as ErrMalformedDuration.
func SumStrings(totals []string) (Duration, error) {
	var sum Duration
	for _, value := range totals {
		if value == "" {
			continue
		}
		d, err := ParseDuration(value)
		if err != nil {
			return Duration{}, err
		}
		if d.TotalMinutes() > math.MaxInt-sum.TotalMinutes() {
			return Duration{}, fmt.Errorf("%w: total overflows at %q", ErrMalformedDuration, value)
		}
		sum = sum.Add(d)
	}
	return sum, nil
}
