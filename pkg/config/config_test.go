package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/arthur-debert/wspackager/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, "package.xml", cfg.Package.Manifest)
	assert.Equal(t, ".", cfg.Build.Destination)
	assert.False(t, cfg.Build.Quiet)
	assert.Equal(t, -1, cfg.Build.CompressionLevel)
	assert.False(t, cfg.Build.CleanupOnFailure)
	assert.Empty(t, cfg.Files)
	assert.Empty(t, cfg.Source)
}

func TestLoadTOMLProjectFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".wspackager.toml", `
[package]
version = "2.0.0"

[build]
destination = "dist/{name}.tar"
cleanup_on_failure = true

[[files]]
path = "files.tar"

[[files]]
path = "templates.tar"
intermediate = true
`)

	cfg, err := Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, "package.xml", cfg.Package.Manifest, "defaults survive")
	assert.Equal(t, "2.0.0", cfg.Package.Version)
	assert.Equal(t, "dist/{name}.tar", cfg.Build.Destination)
	assert.True(t, cfg.Build.CleanupOnFailure)
	assert.Equal(t, []types.FileDeclaration{
		{Path: "files.tar"},
		{Path: "templates.tar", Intermediate: true},
	}, cfg.Files)
}

func TestLoadYAMLProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wspackager.yaml", `
build:
  quiet: true
  compression_level: 9
files:
  - path: xml/*.xml
`)

	cfg, err := Load(dir, nil)
	require.NoError(t, err)

	assert.True(t, cfg.Build.Quiet)
	assert.Equal(t, 9, cfg.Build.CompressionLevel)
	assert.Equal(t, []types.FileDeclaration{{Path: "xml/*.xml"}}, cfg.Files)
}

func TestProjectFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wspackager.yaml", "build:\n  destination: yaml.tar\n")
	writeFile(t, dir, "wspackager.toml", "[build]\ndestination = \"plain.tar\"\n")
	hidden := writeFile(t, dir, ".wspackager.toml", "[build]\ndestination = \"hidden.tar\"\n")

	p, ok := ProjectFile(dir)
	require.True(t, ok)
	assert.Equal(t, hidden, p)

	cfg, err := Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "hidden.tar", cfg.Build.Destination)
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wspackager.toml", "[build]\ndestination = \"file.tar\"\nquiet = false\n")

	t.Setenv("WSPACKAGER_BUILD__DESTINATION", "env.tar")
	t.Setenv("WSPACKAGER_BUILD__QUIET", "true")
	t.Setenv("WSPACKAGER_BUILD__COMPRESSION_LEVEL", "5")

	cfg, err := Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "env.tar", cfg.Build.Destination)
	assert.True(t, cfg.Build.Quiet)
	assert.Equal(t, 5, cfg.Build.CompressionLevel)

	cfg, err = Load(dir, map[string]interface{}{"build.destination": "flag.tar"})
	require.NoError(t, err)
	assert.Equal(t, "flag.tar", cfg.Build.Destination)
	assert.True(t, cfg.Build.Quiet)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.ErrorCode
	}{
		{"malformed toml", "wspackager.toml", "[build\ndestination = ", errors.ErrConfigParse},
		{"malformed yaml", "wspackager.yaml", "build: [unclosed", errors.ErrConfigParse},
		{"bad level", "wspackager.toml", "[build]\ncompression_level = 12\n", errors.ErrInvalidInput},
		{"empty manifest", "wspackager.toml", "[package]\nmanifest = \"\"\n", errors.ErrInvalidInput},
		{"empty file path", "wspackager.toml", "[[files]]\npath = \"\"\n", errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)

			_, err := Load(dir, nil)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestPackageInfo(t *testing.T) {
	manifest := types.PackageInfo{Name: "acme", Version: "1.0.0"}

	cfg := &Config{}
	assert.Equal(t, manifest, cfg.PackageInfo(manifest))

	cfg.Package.Version = "1.0.1"
	assert.Equal(t, types.PackageInfo{Name: "acme", Version: "1.0.1"}, cfg.PackageInfo(manifest))
}

func TestDeclarations(t *testing.T) {
	fallback := []types.FileDeclaration{{Path: "files.tar"}}

	cfg := &Config{}
	assert.Equal(t, fallback, cfg.Declarations(fallback))

	cfg.Files = []types.FileDeclaration{{Path: "xml/*.xml"}}
	assert.Equal(t, cfg.Files, cfg.Declarations(fallback))
}

func TestGenerate(t *testing.T) {
	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)
	cfg.Files = []types.FileDeclaration{{Path: "templates.tar", Intermediate: true}}

	out, err := Generate(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[package]")
	assert.Contains(t, out, "[build]")
	assert.Contains(t, out, "[[files]]")

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, cfg.Build, parsed.Build)
	assert.Equal(t, cfg.Files, parsed.Files)
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, DefaultsContent(), "[build]")
	assert.Contains(t, DefaultsContent(), "compression_level")
}
