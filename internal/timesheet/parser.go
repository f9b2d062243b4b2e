package timesheet

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"time"
)

const (
	dateLayout   = "2006-01-02"
	openLogout   = "--:--"
	openRowLabel = "open"
	totalPrefix  = "Total: "
)

var (
	headingPattern = regexp.MustCompile(`^## (\d{4}-\d{2}-\d{2}) session (\S+)$`)
	rowPattern     = regexp.MustCompile(`^- \[(\d{2}:\d{2}) - (\d{2}:\d{2}|--:--)\] (.*)$`)
)

// Parser streams exported sessions out of a timesheet.
type Parser struct {
	scanner *bufio.Scanner
	pending *Session
}

// NewParser returns a parser reading Markdown from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// NextSession returns the next session block, or io.EOF when none remain.
// Lines outside a session block and lines that don't parse are skipped.
func (p *Parser) NextSession() (*Session, error) {
	if p.scanner == nil {
		return nil, io.EOF
	}

	session := p.pending
	p.pending = nil

	for p.scanner.Scan() {
		line := strings.TrimSpace(p.scanner.Text())

		if next, ok := parseHeading(line); ok {
			if session != nil {
				p.pending = next
				return session, nil
			}
			session = next
			continue
		}
		if session == nil || line == "" {
			continue
		}

		if strings.HasPrefix(line, totalPrefix) {
			session.Total = strings.TrimSpace(strings.TrimPrefix(line, totalPrefix))
			continue
		}
		if row, ok := parseRow(line); ok {
			session.Rows = append(session.Rows, row)
		}
	}

	if err := p.scanner.Err(); err != nil {
		return nil, err
	}
	if session == nil {
		p.scanner = nil
		return nil, io.EOF
	}
	return session, nil
}

func parseHeading(line string) (*Session, bool) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	date, err := time.ParseInLocation(dateLayout, m[1], time.Local)
	if err != nil {
		return nil, false
	}
	return &Session{Date: date, ID: m[2]}, true
}

func parseRow(line string) (Row, bool) {
	m := rowPattern.FindStringSubmatch(line)
	if m == nil {
		return Row{}, false
	}
	row := Row{Login: m[1]}
	if m[2] != openLogout {
		row.Logout = m[2]
	}
	if text := strings.TrimSpace(m[3]); text != openRowLabel {
		row.TotalTime = text
	}
	return row, true
}

func sessionHeading(s Session) string {
	return "## " + s.Date.Format(dateLayout) + " session " + s.ID
}

func formatRow(r Row) string {
	logout := r.Logout
	if logout == "" {
		logout = openLogout
	}
	text := r.TotalTime
	if text == "" {
		text = openRowLabel
	}
	return "- [" + r.Login + " - " + logout + "] " + text
}

func formatSession(s Session) []string {
	lines := make([]string, 0, len(s.Rows)+2)
	lines = append(lines, sessionHeading(s))
	for _, row := range s.Rows {
		lines = append(lines, formatRow(row))
	}
	lines = append(lines, totalPrefix+s.Total)
	return lines
}
