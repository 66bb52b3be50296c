// Package report formats the outcome of a packaging run.
package report

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/spf13/afero"
)

// FormatSize formats a byte count with 1024-based units and at most one
// decimal, e.g. "512 B", "1.5 KB", "3 MB".
func FormatSize(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case size >= TB:
		return scaled(size, TB, "TB")
	case size >= GB:
		return scaled(size, GB, "GB")
	case size >= MB:
		return scaled(size, MB, "MB")
	case size >= KB:
		return scaled(size, KB, "KB")
	default:
		return fmt.Sprintf("%d B", size)
	}
}

func scaled(size, unit int64, suffix string) string {
	s := fmt.Sprintf("%.1f", float64(size)/float64(unit))
	return strings.TrimSuffix(s, ".0") + " " + suffix
}

// FileSize returns the size of the file at p
func FileSize(fsys afero.Fs, p string) (int64, error) {
	info, err := fsys.Stat(p)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrFileAccess, "failed to stat package").
			WithDetail("path", p)
	}
	return info.Size(), nil
}
