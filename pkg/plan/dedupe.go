package plan

import (
	"sort"

	"github.com/arthur-debert/wspackager/pkg/types"
)

// Dedupe orders intermediate declarations ahead of the others (keeping the
// relative order within each group) and drops later declarations of a path
// already seen.
func Dedupe(decls []types.FileDeclaration) []types.FileDeclaration {
	sorted := make([]types.FileDeclaration, len(decls))
	copy(sorted, decls)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Intermediate && !sorted[j].Intermediate
	})

	seen := make(map[string]bool, len(sorted))
	unique := make([]types.FileDeclaration, 0, len(sorted))
	for _, decl := range sorted {
		key := declarationKey(decl.Path)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, decl)
	}

	return unique
}

// declarationKey normalizes a declared path so that spelling differences
// ("./a", "a/", "A.TAR" vs "A.tar") do not defeat deduplication.
func declarationKey(p string) string {
	n := types.NormalizePath(p)
	if types.HasArchiveSuffix(n) {
		return types.TrimArchiveSuffix(n) + types.ArchiveSuffix
	}
	return n
}
