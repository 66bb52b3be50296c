// Package treefilter decides which paths of the working root go into the
// final package.
package treefilter

import (
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/wspackager/pkg/plan"
	"github.com/arthur-debert/wspackager/pkg/types"
)

// Filter is an immutable snapshot of the file list and its ancestor
// folders. Include is safe for concurrent use.
type Filter struct {
	classifier *plan.Classifier
	files      map[string]bool
	folders    map[string]bool
	prepack    []string
	exclude    map[string]bool
}

// New builds the filter for a packaging plan. The file list is the direct
// set plus one "<dir>.tar" per prepack directory.
func New(p types.PackagingPlan, classifier *plan.Classifier) *Filter {
	f := &Filter{
		classifier: classifier,
		files:      make(map[string]bool),
		folders:    make(map[string]bool),
		prepack:    append([]string(nil), p.Prepack...),
		exclude:    make(map[string]bool),
	}

	for _, file := range p.Files() {
		file = types.NormalizePath(file)
		if file == "" {
			continue
		}
		f.files[file] = true
		if f.embedded(file) {
			continue
		}
		for dir := path.Dir(file); dir != "." && dir != "/"; dir = path.Dir(dir) {
			f.folders[dir] = true
		}
	}

	return f
}

// Exclude marks a path that must never be archived, such as the
// destination file itself when it lives inside the working root.
func (f *Filter) Exclude(rel string) *Filter {
	if n := types.NormalizePath(rel); n != "" {
		f.exclude[n] = true
	}
	return f
}

// Include reports whether rel (relative to the working root) is archived.
// An excluded directory excludes its whole subtree.
func (f *Filter) Include(rel string, isDir bool) bool {
	n := types.NormalizePath(rel)
	if n == "" {
		return true
	}

	if f.exclude[n] {
		return false
	}
	if f.classifier.IsIntermediate(n) {
		return false
	}
	if f.embedded(n) {
		return false
	}
	if f.files[n] || f.folders[n] {
		return true
	}

	return f.underListedDir(n)
}

// Files returns the sorted file list
func (f *Filter) Files() []string {
	return sortedKeys(f.files)
}

// Folders returns the sorted ancestor folders of the file list
func (f *Filter) Folders() []string {
	return sortedKeys(f.folders)
}

// embedded reports whether p is an intermediate nested archive that sits
// inside another prepack directory and therefore already ships inside
// that directory's archive.
func (f *Filter) embedded(p string) bool {
	if !f.classifier.IsIntermediateArchive(p) {
		return false
	}
	for _, dir := range f.prepack {
		if isWithin(p, dir) {
			return true
		}
	}
	return false
}

func (f *Filter) underListedDir(p string) bool {
	for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if f.files[dir] {
			return true
		}
	}
	return false
}

func isWithin(p, dir string) bool {
	return dir != "" && strings.HasPrefix(p, dir+"/")
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
