// Package buildinfo holds version metadata stamped at build time.
package buildinfo

// Set via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
