package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// NewWorkingRoot returns a filesystem rooted at dir. Paths handed to it are
// interpreted relative to dir and cannot escape it.
func NewWorkingRoot(dir string) (afero.Fs, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to access working root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("working root is not a directory: %s", abs)
	}

	return afero.NewBasePathFs(afero.NewOsFs(), abs), nil
}

// NewOutput returns the filesystem the final archive is written to.
// Destinations may live outside the working root, so it is not rooted.
func NewOutput() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory creates a new in-memory filesystem, mainly for tests
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// IOFS adapts an afero filesystem to io/fs for libraries that expect fs.FS
func IOFS(fsys afero.Fs) fs.FS {
	return afero.NewIOFS(fsys)
}

// OutputPath places a destination relative to the working root unless it is
// already absolute.
func OutputPath(workingRoot, destination string) string {
	if filepath.IsAbs(destination) {
		return destination
	}
	return filepath.Join(workingRoot, destination)
}

// Readlink returns the target of a symlink when the filesystem supports it
func Readlink(fsys afero.Fs, name string) (string, bool) {
	lr, ok := fsys.(afero.LinkReader)
	if !ok {
		return "", false
	}
	target, err := lr.ReadlinkIfPossible(name)
	if err != nil {
		return "", false
	}
	return target, true
}
