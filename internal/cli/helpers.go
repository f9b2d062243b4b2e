package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/faizmokh/jam/internal/ledger"
)

func resolveDate(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		now := time.Now().In(time.Local)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

// clockSource returns now, or a clock frozen at atFlag (HH:MM) on today's date.
func clockSource(now ledger.NowFunc, atFlag string) (ledger.NowFunc, error) {
	if now == nil {
		now = time.Now
	}
	if atFlag == "" {
		return now, nil
	}

	at, err := ledger.ParseClock(atFlag)
	if err != nil {
		return nil, err
	}
	fixed := at.On(now())
	return func() time.Time { return fixed }, nil
}

func parseIndex(value string) (int, error) {
	index, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("index must be an integer, got %q", value)
	}
	return index, nil
}

func formatEntry(index int, entry ledger.Entry) string {
	var b strings.Builder
	b.Grow(48)

	fmt.Fprintf(&b, "[%d] %s - ", index, entry.LoginString())
	if entry.IsOpen() {
		b.WriteString("--:-- open")
		return b.String()
	}
	b.WriteString(entry.LogoutString())
	b.WriteString("  ")
	b.WriteString(entry.TotalTime())
	return b.String()
}

func printEntries(out io.Writer, l *ledger.Ledger) {
	entries := l.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(out, "(no entries)")
		return
	}
	for i, entry := range entries {
		fmt.Fprintln(out, formatEntry(i, entry))
	}
}
