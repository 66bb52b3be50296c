package display

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/arthur-debert/wspackager/pkg/plan"
	"github.com/arthur-debert/wspackager/pkg/style"
	"github.com/arthur-debert/wspackager/pkg/types"
	"github.com/charmbracelet/lipgloss/tree"
)

// Printer shows the package about to be built
type Printer interface {
	Print(name string, p types.PackagingPlan, classifier *plan.Classifier) error
}

// TreePrinter writes the package layout as a tree headed by the package
// file name. Intermediate nested archives are left out.
type TreePrinter struct {
	w io.Writer
}

// NewTreePrinter creates a TreePrinter writing to w
func NewTreePrinter(w io.Writer) *TreePrinter {
	return &TreePrinter{w: w}
}

// Print renders the tree for p
func (tp *TreePrinter) Print(name string, p types.PackagingPlan, classifier *plan.Classifier) error {
	_, err := fmt.Fprintln(tp.w, Tree(name, p, classifier))
	return err
}

// Tree builds the tree string for p
func Tree(name string, p types.PackagingPlan, classifier *plan.Classifier) string {
	root := newNode(path.Base(name))

	for _, file := range p.Direct {
		root.insert(file)
	}
	for _, dir := range p.Prepack {
		if classifier != nil && classifier.IsIntermediate(dir) {
			continue
		}
		root.insert(dir + types.ArchiveSuffix)
	}

	t := root.build().
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(style.TreeEnumeratorStyle).
		RootStyle(style.TreeRootStyle)

	return t.String()
}

// node keeps children in insertion order
type node struct {
	name     string
	children []*node
	index    map[string]*node
}

func newNode(name string) *node {
	return &node{name: name, index: make(map[string]*node)}
}

func (n *node) insert(p string) {
	parts := strings.Split(types.NormalizePath(p), "/")
	current := n
	for _, part := range parts {
		if part == "" {
			continue
		}
		child, ok := current.index[part]
		if !ok {
			child = newNode(part)
			current.index[part] = child
			current.children = append(current.children, child)
		}
		current = child
	}
}

func (n *node) build() *tree.Tree {
	t := tree.Root(n.name)
	for _, child := range n.children {
		if len(child.children) > 0 {
			t.Child(child.build().RootStyle(style.FolderStyle))
			continue
		}
		if types.HasArchiveSuffix(child.name) {
			t.Child(style.ArchiveStyle.Render(child.name))
			continue
		}
		t.Child(style.FileStyle.Render(child.name))
	}
	return t
}
