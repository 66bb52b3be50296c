package plan

import (
	"strings"

	"github.com/arthur-debert/wspackager/pkg/logging"
	"github.com/arthur-debert/wspackager/pkg/resolver"
	"github.com/arthur-debert/wspackager/pkg/types"
)

// Build classifies resolved paths into a PackagingPlan. The manifest is
// always the first direct entry. Resolutions flagged Prepack contribute to
// the prepack set; everything else is shipped directly, with a trailing
// ".tar@" marker normalized to ".tar".
func Build(manifest string, resolutions []resolver.Resolution) types.PackagingPlan {
	logger := logging.GetLogger("plan")

	manifest = types.NormalizePath(manifest)
	plan := types.PackagingPlan{
		Prepack: []string{},
		Direct:  []string{manifest},
	}

	seen := map[string]bool{manifest: true}
	for _, res := range resolutions {
		for _, p := range res.Paths {
			if res.Prepack {
				dir := types.NormalizePath(p)
				if dir == "" || seen[dir] {
					continue
				}
				seen[dir] = true
				plan.Prepack = append(plan.Prepack, dir)
				continue
			}

			file := types.NormalizePath(normalizeLiteralArchive(p))
			if file == "" || seen[file] {
				continue
			}
			seen[file] = true
			plan.Direct = append(plan.Direct, file)
		}
	}

	logger.Debug().
		Strs("prepack", plan.Prepack).
		Strs("direct", plan.Direct).
		Msg("Packaging plan built")

	return plan
}

// normalizeLiteralArchive turns "x.tar@" into "x.tar"
func normalizeLiteralArchive(p string) string {
	if strings.HasSuffix(p, types.LiteralArchiveSuffix) {
		return strings.TrimSuffix(p, "@")
	}
	return p
}
