// Package buildinfo carries version identifiers stamped at build time.
package buildinfo

// Set via -ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
