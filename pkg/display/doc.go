// Package display renders packaging plans for humans and tools.
//
// TreePrinter draws the contents of the package about to be built as a
// lipgloss tree; Encode writes the plan as YAML or JSON for scripting.
package display
