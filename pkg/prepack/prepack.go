package prepack

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/wspackager/pkg/archive"
	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/arthur-debert/wspackager/pkg/logging"
	"github.com/arthur-debert/wspackager/pkg/plan"
	"github.com/arthur-debert/wspackager/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Prepackager writes one uncompressed nested archive per prepack directory
type Prepackager struct {
	FS         afero.Fs
	Classifier *plan.Classifier

	// RemovePartial deletes the artifacts written so far when a run fails.
	// Left unset, they stay on disk for inspection.
	RemovePartial bool

	logger zerolog.Logger
}

// New creates a Prepackager over the working root
func New(fsys afero.Fs, classifier *plan.Classifier) *Prepackager {
	return &Prepackager{
		FS:         fsys,
		Classifier: classifier,
		logger:     logging.GetLogger("prepack"),
	}
}

// Run archives every prepack directory of p and returns the archive paths
// written, in write order.
func (pp *Prepackager) Run(p types.PackagingPlan) ([]string, error) {
	artifacts := make([]string, 0, len(p.Prepack))

	for _, dir := range Order(p.Prepack) {
		target := dir + types.ArchiveSuffix
		artifacts = append(artifacts, target)

		pp.logger.Debug().
			Str("dir", dir).
			Str("archive", target).
			Msg("Prepackaging directory")

		if err := pp.archiveDir(dir, target); err != nil {
			return pp.fail(err, dir, artifacts)
		}
	}

	return artifacts, nil
}

func (pp *Prepackager) archiveDir(dir, target string) error {
	if info, err := pp.FS.Stat(dir); err == nil && !info.IsDir() {
		return errors.Newf(errors.ErrPrepackage, "%s is not a directory", dir)
	}

	f, err := pp.FS.Create(target)
	if err != nil {
		return err
	}

	w, err := archive.NewWriter(f, false, archive.DefaultCompressionLevel)
	if err != nil {
		_ = f.Close()
		return err
	}

	walkErr := w.AddTree(pp.FS, dir, func(rel string, _ os.FileInfo) bool {
		return !pp.Classifier.IsIntermediate(path.Join(dir, rel))
	})
	closeErr := w.Close()
	fileErr := f.Close()

	switch {
	case walkErr != nil:
		return walkErr
	case closeErr != nil:
		return closeErr
	default:
		return fileErr
	}
}

func (pp *Prepackager) fail(cause error, dir string, artifacts []string) ([]string, error) {
	left := artifacts
	if pp.RemovePartial {
		left = Cleanup(pp.FS, artifacts)
	}

	pp.logger.Error().
		Err(cause).
		Str("dir", dir).
		Strs("artifacts", left).
		Msg("Prepackaging failed")

	return left, errors.Wrapf(cause, errors.ErrPrepackage, "failed to prepackage %s", dir).
		WithDetail("dir", dir).
		WithDetail("artifacts", left)
}

// Order returns the prepack directories with every directory placed after
// the directories nested inside it. The relative order of unrelated
// directories is kept.
func Order(dirs []string) []string {
	ordered := make([]string, len(dirs))
	copy(ordered, dirs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return depth(ordered[i]) > depth(ordered[j])
	})
	return ordered
}

func depth(p string) int {
	return strings.Count(path.Clean(p), "/")
}
