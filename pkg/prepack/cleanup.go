package prepack

import (
	"github.com/arthur-debert/wspackager/pkg/logging"
	"github.com/spf13/afero"
)

// Cleanup removes the given artifacts. Failures are logged and never abort
// the run; the paths that could not be removed are returned.
func Cleanup(fsys afero.Fs, artifacts []string) []string {
	logger := logging.GetLogger("cleanup")

	var failed []string
	for _, artifact := range artifacts {
		if err := fsys.Remove(artifact); err != nil {
			exists, statErr := afero.Exists(fsys, artifact)
			if statErr == nil && !exists {
				continue
			}
			logger.Warn().
				Err(err).
				Str("artifact", artifact).
				Msg("Failed to remove temporary archive")
			failed = append(failed, artifact)
			continue
		}
		logger.Trace().Str("artifact", artifact).Msg("Removed temporary archive")
	}

	return failed
}
