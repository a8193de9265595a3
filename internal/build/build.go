// Package build carries version metadata injected at link time.
package build

// These are overridden via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
