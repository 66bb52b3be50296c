package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wspackager/pkg/filesystem"
	"github.com/klauspost/pgzip"
	"github.com/spf13/afero"
)

const (
	// EntryMode is the permission every archived entry carries
	EntryMode = 0777

	// GzipSuffix selects the gzip stage when it ends the destination name
	GzipSuffix = "tar.gz"

	// DefaultCompressionLevel lets pgzip pick its default level
	DefaultCompressionLevel = pgzip.DefaultCompression
)

// IsGzip reports whether the last six characters of dest are "tar.gz"
func IsGzip(dest string) bool {
	return len(dest) >= len(GzipSuffix) && dest[len(dest)-len(GzipSuffix):] == GzipSuffix
}

// Filter decides whether a walked path is written. rel is slash-separated
// and relative to the walk root. Returning false for a directory skips its
// whole subtree.
type Filter func(rel string, info os.FileInfo) bool

// Writer is a tar stream with an optional gzip stage underneath
type Writer struct {
	tw *tar.Writer
	gz *pgzip.Writer
}

// NewWriter wraps w. When compress is set the tar stream goes through pgzip
// at the given level.
func NewWriter(w io.Writer, compress bool, level int) (*Writer, error) {
	if !compress {
		return &Writer{tw: tar.NewWriter(w)}, nil
	}

	gz, err := pgzip.NewWriterLevel(w, level)
	if err != nil {
		return nil, fmt.Errorf("invalid compression level %d: %w", level, err)
	}
	return &Writer{tw: tar.NewWriter(gz), gz: gz}, nil
}

// AddTree walks root inside fsys and writes every path accepted by filter.
// Entry names are relative to root and root itself is never written.
func (w *Writer) AddTree(fsys afero.Fs, root string, filter Filter) error {
	return afero.Walk(fsys, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := relative(root, p)
		if err != nil {
			return err
		}
		if rel == "" {
			return nil
		}

		if filter != nil && !filter(rel, info) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		return w.AddEntry(fsys, p, rel, info)
	})
}

// AddEntry writes a single filesystem entry under the archive name rel
func (w *Writer) AddEntry(fsys afero.Fs, p, rel string, info os.FileInfo) error {
	link := ""
	if info.Mode()&os.ModeSymlink != 0 {
		target, ok := filesystem.Readlink(fsys, p)
		if !ok {
			return fmt.Errorf("cannot read symlink %s", p)
		}
		link = target
	}

	hdr, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return fmt.Errorf("failed to build header for %s: %w", p, err)
	}

	hdr.Name = rel
	if info.IsDir() {
		hdr.Name = strings.TrimSuffix(rel, "/") + "/"
	}
	hdr.Mode = EntryMode

	if err := w.tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", p, err)
	}

	if !info.Mode().IsRegular() {
		return nil
	}

	f, err := fsys.Open(p)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", p, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(w.tw, f); err != nil {
		return fmt.Errorf("failed to copy %s: %w", p, err)
	}
	return nil
}

// Close flushes the tar stream and then the gzip stage. The underlying
// writer is left open.
func (w *Writer) Close() error {
	if err := w.tw.Close(); err != nil {
		if w.gz != nil {
			_ = w.gz.Close()
		}
		return fmt.Errorf("failed to finish tar stream: %w", err)
	}
	if w.gz != nil {
		if err := w.gz.Close(); err != nil {
			return fmt.Errorf("failed to finish gzip stream: %w", err)
		}
	}
	return nil
}

func relative(root, p string) (string, error) {
	if root == "" || root == "." {
		rel := filepath.ToSlash(filepath.Clean(p))
		if rel == "." || rel == "/" {
			return "", nil
		}
		return strings.TrimPrefix(rel, "/"), nil
	}

	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", fmt.Errorf("failed to relativize %s: %w", p, err)
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}
