package types

import (
	"path"
	"strings"
)

const (
	// ArchiveSuffix marks a declaration whose directory is rolled into a nested archive
	ArchiveSuffix = ".tar"

	// LiteralArchiveSuffix marks a literal .tar file that must be shipped as-is
	LiteralArchiveSuffix = ".tar@"
)

// FileDeclaration is one declared input of a package.
// Path may be a glob pattern and may end with ArchiveSuffix.
type FileDeclaration struct {
	Path         string `koanf:"path" toml:"path" yaml:"path" json:"path"`
	Intermediate bool   `koanf:"intermediate" toml:"intermediate" yaml:"intermediate" json:"intermediate"`
}

// WantsPrepack reports whether the declaration asks for its directory to be
// rolled into a nested archive first.
func (d FileDeclaration) WantsPrepack() bool {
	return HasArchiveSuffix(d.Path)
}

// PackageInfo holds the values used for destination filename templating
type PackageInfo struct {
	Name    string `koanf:"name" toml:"name" yaml:"name" json:"name"`
	Version string `koanf:"version" toml:"version" yaml:"version" json:"version"`
}

// HasArchiveSuffix reports whether p ends with ".tar", ignoring case
func HasArchiveSuffix(p string) bool {
	return len(p) >= len(ArchiveSuffix) &&
		strings.EqualFold(p[len(p)-len(ArchiveSuffix):], ArchiveSuffix)
}

// TrimArchiveSuffix removes a trailing ".tar" (any case) from p
func TrimArchiveSuffix(p string) string {
	if HasArchiveSuffix(p) {
		return p[:len(p)-len(ArchiveSuffix)]
	}
	return p
}

// NormalizePath converts p into the slash-separated, cleaned form used as
// the identity of a path throughout the pipeline.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" {
		return ""
	}
	cleaned := path.Clean(p)
	if cleaned == "." {
		return ""
	}
	return cleaned
}
