package timesheet

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/faizmokh/jam/internal/files"
)

// Writer exports sessions into the monthly timesheet files.
type Writer struct {
	manager *files.Manager
}

// NewWriter wires a writer onto the shared files.Manager.
func NewWriter(manager *files.Manager) *Writer {
	return &Writer{manager: manager}
}

// Write stores session under its date. Exporting the same session again
// replaces the earlier block instead of duplicating it. It returns the path
// of the timesheet written.
func (w *Writer) Write(ctx context.Context, session Session) (string, error) {
	if w == nil || w.manager == nil {
		return "", errors.New("writer not initialized with file manager")
	}
	if len(session.Rows) == 0 {
		return "", ErrEmptySession
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := w.manager.EnsureSheetFile(session.Date)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	lines := splitLines(string(data))
	block := formatSession(session)

	start, end := findBlock(lines, sessionHeading(session))
	if start < 0 {
		if needsSeparation(lines) {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	} else {
		replaced := make([]string, 0, len(lines)-(end-start)+len(block))
		replaced = append(replaced, lines[:start]...)
		replaced = append(replaced, block...)
		replaced = append(replaced, lines[end:]...)
		lines = replaced
	}

	return path, writeLines(path, lines)
}

// findBlock locates the lines belonging to heading, trailing blank lines excluded.
func findBlock(lines []string, heading string) (int, int) {
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == heading {
			start = i
			break
		}
	}
	if start == -1 {
		return -1, -1
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "## ") {
			end = i
			break
		}
	}
	for end > start+1 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return start, end
}

func splitLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	// Split leaves an empty trailing element when input ends with a newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func needsSeparation(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	return strings.TrimSpace(lines[len(lines)-1]) != ""
}

func writeLines(path string, lines []string) error {
	temp, err := os.CreateTemp(filepath.Dir(path), "jam-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	content := strings.Join(lines, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil {
		if err := os.Chmod(temp.Name(), info.Mode()); err != nil {
			return err
		}
	}
	return os.Rename(temp.Name(), path)
}
