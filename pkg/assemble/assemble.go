// Package assemble writes the final package archive from the working root.
package assemble

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/wspackager/pkg/archive"
	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/arthur-debert/wspackager/pkg/logging"
	"github.com/spf13/afero"
)

// Predicate decides whether a path relative to the working root is archived
type Predicate interface {
	Include(rel string, isDir bool) bool
}

// Assembler streams the filtered working root into the destination file
type Assembler struct {
	Source           afero.Fs
	Output           afero.Fs
	CompressionLevel int
}

// Assemble writes destination, creating its parent directories. The gzip
// stage is used when the name ends in "tar.gz". The call only succeeds once
// the tar stream, the gzip stream and the file have all been closed.
func (a *Assembler) Assemble(destination string, filter Predicate) error {
	logger := logging.GetLogger("assemble")
	compress := archive.IsGzip(destination)

	logger.Debug().
		Str("destination", destination).
		Bool("gzip", compress).
		Msg("Assembling package")

	if dir := filepath.Dir(destination); dir != "" {
		if err := a.Output.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, errors.ErrAssemble, "failed to create destination directory").
				WithDetail("destination", destination)
		}
	}

	f, err := a.Output.OpenFile(destination, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, errors.ErrAssemble, "failed to create destination").
			WithDetail("destination", destination)
	}

	w, err := archive.NewWriter(f, compress, a.CompressionLevel)
	if err != nil {
		_ = f.Close()
		return errors.Wrap(err, errors.ErrAssemble, "failed to open archive stream").
			WithDetail("destination", destination)
	}

	walkErr := w.AddTree(a.Source, ".", func(rel string, info os.FileInfo) bool {
		return filter.Include(rel, info.IsDir())
	})
	streamErr := w.Close()
	syncErr := f.Sync()
	closeErr := f.Close()

	for _, stageErr := range []error{walkErr, streamErr, syncErr, closeErr} {
		if stageErr != nil {
			return errors.Wrap(stageErr, errors.ErrAssemble, "failed to write package").
				WithDetail("destination", destination)
		}
	}

	logger.Debug().Str("destination", destination).Msg("Package written")
	return nil
}
