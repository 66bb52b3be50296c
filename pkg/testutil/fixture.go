package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wspackager/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Fixture builds a working root for a test
type Fixture struct {
	t    *testing.T
	fs   afero.Fs
	root string
}

// NewFixture creates a fixture backed by an in-memory filesystem
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{t: t, fs: filesystem.NewMemory()}
}

// NewDiskFixture creates a fixture rooted in a fresh temporary directory
func NewDiskFixture(t *testing.T) *Fixture {
	t.Helper()

	root := t.TempDir()
	fs, err := filesystem.NewWorkingRoot(root)
	require.NoError(t, err)

	return &Fixture{t: t, fs: fs, root: root}
}

// File writes content at the relative path, creating parent directories
func (f *Fixture) File(path, content string) *Fixture {
	f.t.Helper()

	require.NoError(f.t, f.fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(f.t, afero.WriteFile(f.fs, path, []byte(content), 0644))
	return f
}

// Dir creates an empty directory at the relative path
func (f *Fixture) Dir(path string) *Fixture {
	f.t.Helper()

	require.NoError(f.t, f.fs.MkdirAll(path, 0755))
	return f
}

// Manifest writes a minimal package.xml naming the given instruction files
func (f *Fixture) Manifest(name, version string, instructions ...string) *Fixture {
	f.t.Helper()

	content := `<?xml version="1.0" encoding="UTF-8"?>
<package name="` + name + `">
	<packageinformation>
		<packagename>` + name + `</packagename>
		<version>` + version + `</version>
	</packageinformation>
	<instructions type="install">
`
	for _, instruction := range instructions {
		content += "\t\t<instruction type=\"file\">" + instruction + "</instruction>\n"
	}
	content += "\t</instructions>\n</package>\n"

	return f.File("package.xml", content)
}

// FS returns the fixture filesystem
func (f *Fixture) FS() afero.Fs {
	return f.fs
}

// Root returns the on-disk root directory, empty for in-memory fixtures
func (f *Fixture) Root() string {
	return f.root
}

// Exists reports whether the relative path exists in the fixture
func (f *Fixture) Exists(path string) bool {
	f.t.Helper()

	ok, err := afero.Exists(f.fs, path)
	require.NoError(f.t, err)
	return ok
}
