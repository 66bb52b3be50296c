package config

import (
	"github.com/arthur-debert/wspackager/pkg/types"
)

// Config is the effective wspackager configuration
type Config struct {
	Package PackageConfig           `koanf:"package" toml:"package" yaml:"package" json:"package"`
	Build   BuildConfig             `koanf:"build" toml:"build" yaml:"build" json:"build"`
	Files   []types.FileDeclaration `koanf:"files" toml:"files,omitempty" yaml:"files,omitempty" json:"files,omitempty"`

	// Source is the project file that was loaded, empty when none
	Source string `koanf:"-" toml:"-" yaml:"-" json:"-"`
}

// PackageConfig holds manifest settings
type PackageConfig struct {
	Manifest string `koanf:"manifest" toml:"manifest" yaml:"manifest" json:"manifest"`
	Name     string `koanf:"name" toml:"name" yaml:"name" json:"name"`
	Version  string `koanf:"version" toml:"version" yaml:"version" json:"version"`
}

// BuildConfig holds settings of a packaging run
type BuildConfig struct {
	Destination      string `koanf:"destination" toml:"destination" yaml:"destination" json:"destination"`
	Quiet            bool   `koanf:"quiet" toml:"quiet" yaml:"quiet" json:"quiet"`
	CompressionLevel int    `koanf:"compression_level" toml:"compression_level" yaml:"compression_level" json:"compression_level"`
	CleanupOnFailure bool   `koanf:"cleanup_on_failure" toml:"cleanup_on_failure" yaml:"cleanup_on_failure" json:"cleanup_on_failure"`
}

// PackageInfo returns info with the configured name and version taking
// precedence over the given values.
func (c *Config) PackageInfo(info types.PackageInfo) types.PackageInfo {
	if c.Package.Name != "" {
		info.Name = c.Package.Name
	}
	if c.Package.Version != "" {
		info.Version = c.Package.Version
	}
	return info
}

// Declarations returns the configured file list, or fallback when none is
// configured.
func (c *Config) Declarations(fallback []types.FileDeclaration) []types.FileDeclaration {
	if len(c.Files) > 0 {
		return c.Files
	}
	return fallback
}
