// Package version holds build information injected at link time.
package version

import (
	"runtime/debug"
)

// Build information set by ldflags:
//
//	-X github.com/arthur-debert/wspackager/internal/version.Version={{.Version}}
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Resolved returns Version, falling back to the module version recorded by
// "go install" when no version was injected.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
