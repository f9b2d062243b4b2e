package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	configFileName = "config.toml"
	logFileName    = "jam.log"
)

// Manager knows where jam keeps its files under the data root.
type Manager struct {
	basePath string
}

// NewManager roots a Manager at basePath, or at ResolveBasePath when empty.
func NewManager(basePath string) (*Manager, error) {
	if basePath == "" {
		resolved, err := ResolveBasePath()
		if err != nil {
			return nil, err
		}
		basePath = resolved
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}
	return &Manager{basePath: abs}, nil
}

// BasePath returns the data root.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ConfigPath is the optional TOML config file.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, configFileName)
}

// LogPath is the append-only diagnostic log.
func (m *Manager) LogPath() string {
	return filepath.Join(m.basePath, "logs", logFileName)
}

// SheetPath resolves the monthly timesheet for t. The file may not exist yet.
func (m *Manager) SheetPath(t time.Time) string {
	yearDir := filepath.Join(m.basePath, fmt.Sprintf("%04d", t.Year()))
	return filepath.Join(yearDir, fmt.Sprintf("%04d-%02d.md", t.Year(), t.Month()))
}

// EnsureSheetFile creates the directory tree and the month file with its
// heading if needed, returning the absolute path.
func (m *Manager) EnsureSheetFile(t time.Time) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	path := m.SheetPath(t)
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, filePermissions)
	if err != nil {
		return "", fmt.Errorf("open timesheet: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat timesheet: %w", err)
	}
	if info.Size() == 0 {
		if _, err := file.WriteString(sheetHeader(t)); err != nil {
			return "", fmt.Errorf("write timesheet header: %w", err)
		}
	}

	return path, nil
}

// SheetExists reports whether a timesheet was already written for t's month.
func (m *Manager) SheetExists(t time.Time) bool {
	_, err := os.Stat(m.SheetPath(t))
	return err == nil
}

func sheetHeader(t time.Time) string {
	return fmt.Sprintf("# Timesheet %s %04d\n\n", t.Month().String(), t.Year())
}
