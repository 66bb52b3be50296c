package plan

import (
	"github.com/arthur-debert/wspackager/pkg/resolver"
	"github.com/arthur-debert/wspackager/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

// Classifier answers intermediate-classification queries. It is built once
// from the deduplicated declarations and never mutated afterwards.
type Classifier struct {
	exact    map[string]bool
	patterns []types.FileDeclaration
}

// NewClassifier indexes the declarations. When a path is declared more than
// once the first declaration wins, so callers should pass Dedupe output.
func NewClassifier(decls []types.FileDeclaration) *Classifier {
	c := &Classifier{exact: make(map[string]bool, len(decls))}

	for _, decl := range decls {
		key := declarationKey(decl.Path)
		if resolver.HasMagic(key) {
			c.patterns = append(c.patterns, types.FileDeclaration{Path: key, Intermediate: decl.Intermediate})
			continue
		}
		if _, exists := c.exact[key]; !exists {
			c.exact[key] = decl.Intermediate
		}
	}

	return c
}

// Bind returns a classifier whose glob declarations are replaced by the
// paths they resolved to. A prepack match "dir" is recorded as "dir.tar".
// The receiver is left untouched.
func (c *Classifier) Bind(resolutions []resolver.Resolution) *Classifier {
	bound := &Classifier{exact: make(map[string]bool, len(c.exact))}
	for key, intermediate := range c.exact {
		bound.exact[key] = intermediate
	}

	for _, r := range resolutions {
		if !resolver.HasMagic(declarationKey(r.Declaration.Path)) {
			continue
		}
		for _, resolved := range r.Paths {
			key := types.NormalizePath(resolved)
			if r.Prepack {
				key += types.ArchiveSuffix
			} else {
				key = declarationKey(key)
			}
			if _, exists := bound.exact[key]; !exists {
				bound.exact[key] = r.Declaration.Intermediate
			}
		}
	}

	return bound
}

// IsIntermediate reports whether p is the raw directory of an intermediate
// nested archive, i.e. "p.tar" is declared intermediate. A path that already
// ends in ".tar" is only checked against exact declarations, so a glob like
// "plugins/*.tar" never claims the archives it produces.
func (c *Classifier) IsIntermediate(p string) bool {
	n := types.NormalizePath(p)
	if n == "" {
		return false
	}
	key := n + types.ArchiveSuffix
	if intermediate, ok := c.exact[key]; ok || types.HasArchiveSuffix(n) {
		return intermediate
	}
	return c.match(key)
}

// IsIntermediateArchive reports whether p itself is declared intermediate.
// For prepack declarations this is the nested archive path "dir.tar".
func (c *Classifier) IsIntermediateArchive(p string) bool {
	n := types.NormalizePath(p)
	if n == "" {
		return false
	}
	return c.lookup(declarationKey(n))
}

func (c *Classifier) lookup(key string) bool {
	if intermediate, ok := c.exact[key]; ok {
		return intermediate
	}
	return c.match(key)
}

func (c *Classifier) match(key string) bool {
	for _, decl := range c.patterns {
		if matched, err := doublestar.Match(decl.Path, key); err == nil && matched {
			return decl.Intermediate
		}
	}
	return false
}
