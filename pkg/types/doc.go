// Package types defines the core data structures shared by the packaging
// pipeline: the declared inputs (FileDeclaration, PackageInfo), the computed
// PackagingPlan and the run State machine.
package types
