// Package plan turns resolved declarations into a PackagingPlan and owns the
// intermediate classification every later stage consults.
//
// Declarations are deduplicated once, intermediate declarations first, so a
// path declared both ways is treated as intermediate. The Classifier is built
// from that deduplicated list and is the single source of truth for
// "is this path intermediate?".
package plan
