package packager

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/wspackager/pkg/archive"
	"github.com/arthur-debert/wspackager/pkg/types"
)

// DefaultDestination names the package after its manifest
const DefaultDestination = "{name}_v{version}.tar.gz"

var whitespace = regexp.MustCompile(`\s+`)

// ResolveDestination expands the {name} and {version} placeholders of dest.
// "." selects DefaultDestination and whitespace runs in the version become
// underscores.
func ResolveDestination(dest string, info types.PackageInfo) string {
	if dest == "." || dest == "" {
		dest = DefaultDestination
	}

	version := whitespace.ReplaceAllString(info.Version, "_")
	dest = strings.ReplaceAll(dest, "{name}", info.Name)
	dest = strings.ReplaceAll(dest, "{version}", version)

	return filepath.Clean(dest)
}

// IsGzip reports whether dest selects the gzip stage
func IsGzip(dest string) bool {
	return archive.IsGzip(dest)
}
