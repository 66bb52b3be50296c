package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/wspackager/pkg/types"
	"gopkg.in/yaml.v3"
)

// Encoded plan formats
const (
	FormatTree = "tree"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// PlanDocument is the machine-readable form of a plan
type PlanDocument struct {
	Package string              `yaml:"package" json:"package"`
	Plan    types.PackagingPlan `yaml:"plan" json:"plan"`
	Files   []string            `yaml:"files" json:"files"`
}

// Encode writes p as YAML or JSON
func Encode(w io.Writer, format, pkg string, p types.PackagingPlan) error {
	doc := PlanDocument{Package: pkg, Plan: p, Files: p.Files()}

	switch strings.ToLower(format) {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown plan format: %s", format)
	}
}
