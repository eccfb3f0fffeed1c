// Package build holds version information stamped in at build time.
package build

// Overridden via -ldflags on release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
