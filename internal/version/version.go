// Package version exposes build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/faizmokh/jam/internal/version.Version=v0.1.0"
package version

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info formats the build metadata for `jam version` and `jam --version`.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
