package types

// PackagingPlan is the resolved split of all inputs into paths that are
// shipped verbatim and directories that are rolled into nested archives.
//
// Direct always starts with the manifest file. A path never appears in both
// sets and neither set contains duplicates.
type PackagingPlan struct {
	Prepack []string `yaml:"prepack" json:"prepack"`
	Direct  []string `yaml:"direct" json:"direct"`
}

// Archives returns the nested archive path for every prepack directory
func (p PackagingPlan) Archives() []string {
	archives := make([]string, 0, len(p.Prepack))
	for _, dir := range p.Prepack {
		archives = append(archives, dir+ArchiveSuffix)
	}
	return archives
}

// Files returns the final file list: Direct followed by Archives
func (p PackagingPlan) Files() []string {
	files := make([]string, 0, len(p.Direct)+len(p.Prepack))
	files = append(files, p.Direct...)
	return append(files, p.Archives()...)
}

// Contains reports whether path is a direct entry or a prepack directory
func (p PackagingPlan) Contains(path string) bool {
	for _, d := range p.Direct {
		if d == path {
			return true
		}
	}
	for _, d := range p.Prepack {
		if d == path {
			return true
		}
	}
	return false
}
