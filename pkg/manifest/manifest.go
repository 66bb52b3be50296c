// Package manifest reads package.xml, the manifest every package ships.
//
// The manifest provides the package name and version used to name the
// destination, and the instruction files it references become the
// default file declarations when no explicit list is configured.
package manifest

import (
	"strings"

	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/arthur-debert/wspackager/pkg/types"
	"github.com/beevik/etree"
	"github.com/spf13/afero"
)

// DefaultPath is the manifest location relative to the working root
const DefaultPath = "package.xml"

// Manifest is a parsed package.xml
type Manifest struct {
	Path string
	doc  *etree.Document
}

// Load reads and parses the manifest at path inside fsys
func Load(fsys afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifest, "failed to read manifest").
			WithDetail("path", path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifest, "failed to parse manifest").
			WithDetail("path", path)
	}

	m := &Manifest{Path: path, doc: doc}
	if _, err := m.info(); err != nil {
		return nil, err
	}
	return m, nil
}

// Info returns the package name and version
func (m *Manifest) Info() types.PackageInfo {
	info, _ := m.info()
	return info
}

func (m *Manifest) info() (types.PackageInfo, error) {
	root := m.doc.SelectElement("package")
	if root == nil {
		return types.PackageInfo{}, errors.New(errors.ErrManifest, "manifest has no <package> root").
			WithDetail("path", m.Path)
	}

	info := types.PackageInfo{
		Name: strings.TrimSpace(root.SelectAttrValue("name", "")),
	}
	if version := root.FindElement("./packageinformation/version"); version != nil {
		info.Version = strings.TrimSpace(version.Text())
	}

	if info.Name == "" {
		return info, errors.New(errors.ErrManifest, "manifest does not declare a package name").
			WithDetail("path", m.Path)
	}
	if info.Version == "" {
		return info, errors.New(errors.ErrManifest, "manifest does not declare a version").
			WithDetail("path", m.Path)
	}
	return info, nil
}

// Declarations lists the files the manifest references: the text of every
// <instruction> and the file attribute of every required or optional
// package, in document order and without repeats.
func (m *Manifest) Declarations() []types.FileDeclaration {
	var decls []types.FileDeclaration
	seen := make(map[string]bool)

	add := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		decls = append(decls, types.FileDeclaration{Path: p})
	}

	root := m.doc.SelectElement("package")
	if root == nil {
		return decls
	}

	var visit func(el *etree.Element)
	visit = func(el *etree.Element) {
		switch el.Tag {
		case "instruction":
			add(el.Text())
		case "requiredpackage", "optionalpackage":
			add(el.SelectAttrValue("file", ""))
		}
		for _, child := range el.ChildElements() {
			visit(child)
		}
	}
	visit(root)

	return decls
}
