package resolver

import (
	"strings"

	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/arthur-debert/wspackager/pkg/filesystem"
	"github.com/arthur-debert/wspackager/pkg/logging"
	"github.com/arthur-debert/wspackager/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// globMeta holds the characters that turn a path into a pattern
const globMeta = "*?[{"

// Resolution is the outcome of resolving one declaration
type Resolution struct {
	Declaration types.FileDeclaration
	// Prepack is true when the original declaration ended in ".tar"
	Prepack bool
	Paths   []string
}

// HasMagic reports whether p contains glob metacharacters
func HasMagic(p string) bool {
	return strings.ContainsAny(p, globMeta)
}

// Resolve expands a single declared path. A trailing ".tar" is stripped
// before expansion.
func Resolve(fsys afero.Fs, declared string) ([]string, error) {
	adjusted := types.TrimArchiveSuffix(declared)

	if !HasMagic(adjusted) {
		return []string{adjusted}, nil
	}

	pattern := types.NormalizePath(adjusted)
	if strings.HasPrefix(pattern, "/") || strings.HasPrefix(pattern, "../") {
		return nil, errors.New(errors.ErrResolve, "glob patterns must stay inside the working root").
			WithDetail("pattern", declared)
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.New(errors.ErrResolve, "malformed glob pattern").
			WithDetail("pattern", declared)
	}

	matches, err := doublestar.Glob(filesystem.IOFS(fsys), pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrResolve, "failed to expand %q", declared).
			WithDetail("pattern", declared)
	}

	if types.HasArchiveSuffix(declared) {
		return directories(fsys, matches)
	}
	return matches, nil
}

// directories keeps the matches that are directories. Only directories can
// be rolled into a nested archive.
func directories(fsys afero.Fs, matches []string) ([]string, error) {
	dirs := make([]string, 0, len(matches))
	for _, m := range matches {
		isDir, err := afero.IsDir(fsys, m)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrResolve, "failed to stat %q", m).
				WithDetail("path", m)
		}
		if isDir {
			dirs = append(dirs, m)
		}
	}
	return dirs, nil
}

// ResolveAll resolves every declaration concurrently. Results are returned in
// declaration order regardless of completion order.
func ResolveAll(fsys afero.Fs, decls []types.FileDeclaration) ([]Resolution, error) {
	logger := logging.GetLogger("resolver")
	results := make([]Resolution, len(decls))

	var g errgroup.Group
	for i, decl := range decls {
		g.Go(func() error {
			paths, err := Resolve(fsys, decl.Path)
			if err != nil {
				return err
			}

			results[i] = Resolution{
				Declaration: decl,
				Prepack:     decl.WantsPrepack(),
				Paths:       paths,
			}

			logger.Trace().
				Str("declared", decl.Path).
				Strs("paths", paths).
				Msg("Resolved declaration")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
