// Package buildinfo carries version metadata injected at build time:
//
//	go build -ldflags "-X github.com/goliatone/go-natvisgen/internal/buildinfo.Version=1.0.0"
package buildinfo

import "fmt"

// Version, Commit, Date are injected at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build metadata for display.
func String(name string) string {
	return fmt.Sprintf("%s %s (commit: %s, built on: %s)", name, Version, Commit, Date)
}
